package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contact_news/internal/auth"
	"contact_news/internal/domain"
)

type NewsFetcher interface {
	FetchNews(ctx context.Context, contactID, ownerUserID uuid.UUID) (*domain.FetchResult, error)
}

type BatchRunner interface {
	RunBatchRefresh(ctx context.Context) ([]domain.BatchResult, error)
}

type ChatResponder interface {
	SendMessage(ctx context.Context, contactID, ownerUserID uuid.UUID, message string) (string, error)
}

// Handler exposes the news and chat services over HTTP.
type Handler struct {
	news   NewsFetcher
	batch  BatchRunner
	chat   ChatResponder
	logger *slog.Logger
}

func NewHandler(news NewsFetcher, batch BatchRunner, chat ChatResponder, logger *slog.Logger) *Handler {
	return &Handler{
		news:   news,
		batch:  batch,
		chat:   chat,
		logger: logger.With("component", "api"),
	}
}

// RouterConfig carries the auth collaborators and per-route deadlines. The
// batch route gets its own deadline since one run spans many provider calls.
type RouterConfig struct {
	Resolver       auth.TokenResolver
	ServiceRoleKey string
	RequestTimeout time.Duration
	BatchTimeout   time.Duration
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.logger), CORS())
	h.RegisterRoutes(router, cfg)
	return router
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine, cfg RouterConfig) {
	router.GET("/healthz", h.health)

	fn := router.Group("/functions/v1")

	user := fn.Group("", Timeout(cfg.RequestTimeout), auth.Middleware(cfg.Resolver))
	user.POST("/fetch-contact-news", h.fetchContactNews)
	user.POST("/contact-chat", h.contactChat)

	fn.POST("/batch-fetch-news", Timeout(cfg.BatchTimeout), auth.ServiceRoleMiddleware(cfg.ServiceRoleKey), h.batchFetchNews)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type fetchRequest struct {
	ContactID string `json:"contactId"`
}

type contactSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type fetchResponse struct {
	Success       bool                 `json:"success"`
	Contact       contactSummary       `json:"contact"`
	ArticlesFound int                  `json:"articlesFound"`
	ArticlesSaved int                  `json:"articlesSaved"`
	Articles      []domain.NewsArticle `json:"articles"`
}

func (h *Handler) fetchContactNews(c *gin.Context) {
	userID, ok := h.authorizedUserID(c)
	if !ok {
		return
	}

	var req fetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.ContactID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "contactId is required"})
		return
	}
	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "contactId must be a uuid"})
		return
	}

	res, err := h.news.FetchNews(c.Request.Context(), contactID, userID)
	if err != nil {
		h.fail(c, err, gin.H{"success": false, "error": err.Error()})
		return
	}

	articles := res.Articles
	if articles == nil {
		articles = []domain.NewsArticle{}
	}
	c.JSON(http.StatusOK, fetchResponse{
		Success:       true,
		Contact:       contactSummary{ID: res.Contact.ID, Name: res.Contact.FullName},
		ArticlesFound: res.ArticlesFound,
		ArticlesSaved: res.ArticlesSaved,
		Articles:      articles,
	})
}

func (h *Handler) batchFetchNews(c *gin.Context) {
	results, err := h.batch.RunBatchRefresh(c.Request.Context())
	if errors.Is(err, domain.ErrRunInterrupted) && results != nil {
		h.logger.Warn("batch refresh incomplete", "processed", len(results), "error", err)
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"processed": len(results),
			"results":   results,
			"complete":  false,
			"message":   err.Error(),
		})
		return
	}
	if err != nil {
		h.fail(c, err, gin.H{"success": false, "error": err.Error()})
		return
	}

	if len(results) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "No contacts to process",
			"processed": 0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"processed": len(results),
		"results":   results,
	})
}

type chatRequest struct {
	ContactID string `json:"contact_id"`
	Message   string `json:"message"`
}

func (h *Handler) contactChat(c *gin.Context) {
	userID, ok := h.authorizedUserID(c)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.ContactID) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contact_id and message are required"})
		return
	}
	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contact_id must be a uuid"})
		return
	}

	reply, err := h.chat.SendMessage(c.Request.Context(), contactID, userID, req.Message)
	if err != nil {
		h.fail(c, err, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assistant_message": reply})
}

func (h *Handler) authorizedUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok || userID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Handler) fail(c *gin.Context, err error, body gin.H) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.FullPath(), "status", status, "error", err)
	} else {
		h.logger.Warn("request rejected", "path", c.FullPath(), "status", status, "error", err)
	}
	c.JSON(status, body)
}
