package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one batch refresh of stale high-priority contacts",
	Long: `Run one batch refresh and print the per-contact report as JSON.

Contacts at or above batch.min_priority with a company name and no news
fetched within batch.freshness are refreshed one at a time.`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

var (
	fetchContact string
	fetchUser    string
	chatContact  string
	chatUser     string
	chatMessage  string
)

var fetchCmd = &cobra.Command{
	Use:     "fetch",
	Short:   "Fetch and store news for one contact",
	Example: `  contactnews fetch --contact 6f1c... --user 0b7e...`,
	Args:    cobra.NoArgs,
	RunE:    runFetch,
}

var chatCmd = &cobra.Command{
	Use:     "chat",
	Short:   "Ask the assistant about one contact",
	Example: `  contactnews chat --contact 6f1c... --user 0b7e... --message "what's new?"`,
	Args:    cobra.NoArgs,
	RunE:    runChat,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchContact, "contact", "", "contact id")
	fetchCmd.Flags().StringVar(&fetchUser, "user", "", "owning user id")
	_ = fetchCmd.MarkFlagRequired("contact")
	_ = fetchCmd.MarkFlagRequired("user")

	chatCmd.Flags().StringVar(&chatContact, "contact", "", "contact id")
	chatCmd.Flags().StringVar(&chatUser, "user", "", "owning user id")
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "message to send")
	_ = chatCmd.MarkFlagRequired("contact")
	_ = chatCmd.MarkFlagRequired("user")
	_ = chatCmd.MarkFlagRequired("message")
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext()
	defer cancel()
	if a.cfg.Batch.RunTimeout > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, a.cfg.Batch.RunTimeout)
		defer stop()
	}

	results, err := a.batch.RunBatchRefresh(ctx)
	if err != nil {
		return fmt.Errorf("batch refresh: %w", err)
	}

	return printJSON(cmd, map[string]any{
		"success":   true,
		"processed": len(results),
		"results":   results,
	})
}

func runFetch(cmd *cobra.Command, args []string) error {
	contactID, userID, err := parseIDs(fetchContact, fetchUser)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext()
	defer cancel()

	res, err := a.news.FetchNews(ctx, contactID, userID)
	if err != nil {
		return fmt.Errorf("fetch news: %w", err)
	}

	return printJSON(cmd, map[string]any{
		"contact":       map[string]any{"id": res.Contact.ID, "name": res.Contact.FullName},
		"articlesFound": res.ArticlesFound,
		"articlesSaved": res.ArticlesSaved,
		"inserted":      res.Inserted,
		"articles":      res.Articles,
	})
}

func runChat(cmd *cobra.Command, args []string) error {
	contactID, userID, err := parseIDs(chatContact, chatUser)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext()
	defer cancel()

	reply, err := a.chat.SendMessage(ctx, contactID, userID, chatMessage)
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}

func parseIDs(contact, user string) (uuid.UUID, uuid.UUID, error) {
	contactID, err := uuid.Parse(contact)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid --contact: %w", err)
	}
	userID, err := uuid.Parse(user)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid --user: %w", err)
	}
	return contactID, userID, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
