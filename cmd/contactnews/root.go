package main

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"contact_news/internal/auth"
	"contact_news/internal/config"
	"contact_news/internal/llm"
	"contact_news/internal/logging"
	"contact_news/internal/publisher"
	"contact_news/internal/service"
	"contact_news/internal/source/newsapi"
	"contact_news/internal/storage/postgres"
)

// Version is set at build time.
var Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "contactnews",
	Short:         "Contact news ingestion and contact chat service",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}

// app holds the wired services for one process.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        *sqlx.DB
	publisher *publisher.RabbitMQ
	resolver  *auth.GoTrue
	news      *service.NewsService
	batch     *service.BatchService
	chat      *service.ChatService
	closeLog  func() error
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog := logging.New(cfg.LogLevel, cfg.LogFile)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	a := &app{cfg: cfg, logger: logger, db: db, closeLog: closeLog}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.publisher = rabbitMQ
		pub = rabbitMQ
	}

	contactStore := postgres.NewContactStore(db)
	newsStore := postgres.NewNewsStore(db)
	recordStore := postgres.NewRecordStore(db)
	chatStore := postgres.NewChatStore(db)

	newsSource := newsapi.New(newsapi.Config{
		BaseURL:        cfg.News.BaseURL,
		APIKey:         cfg.News.APIKey,
		Timeout:        cfg.News.Timeout,
		MaxAttempts:    cfg.News.Retry.MaxAttempts,
		InitialBackoff: cfg.News.Retry.InitialBackoff,
		MaxBackoff:     cfg.News.Retry.MaxBackoff,
	}, logger)

	model, err := llm.New(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	authorizer := service.NewContactAuthorizer(contactStore)
	a.news = service.NewNewsService(authorizer, newsSource, newsStore, pub, logger, cfg.News)
	a.batch = service.NewBatchService(contactStore, newsStore, a.news, logger, cfg.Batch)
	a.chat = service.NewChatService(authorizer, recordStore, newsStore, chatStore, model, *cfg.LLM.Temperature, logger, cfg.Chat)
	a.resolver = auth.NewGoTrue(auth.Config{
		BaseURL: cfg.Auth.BaseURL,
		AnonKey: cfg.Auth.AnonKey,
		Timeout: cfg.Auth.Timeout,
	}, logger)

	return a, nil
}

func (a *app) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close publisher", "error", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close database", "error", err)
		}
	}
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}
