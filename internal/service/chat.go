package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"contact_news/internal/config"
	"contact_news/internal/domain"
)

const FallbackReply = "Sorry, I could not generate a response."

const systemPrompt = `You are an AI copilot inside a CRM contact page.
Only discuss THIS contact. Be concise, specific, and action-oriented.
Use ONLY the provided context; do not invent facts.
If information is missing, say so and propose a concrete next step (e.g., add a note, set a reminder).
Prefer short drafts, bullet points, and suggested follow-ups over long narratives.`

// ChatService answers a user's question about one contact using a bounded
// snapshot of that contact's records.
type ChatService struct {
	authorizer  *ContactAuthorizer
	records     ContextStore
	news        NewsStore
	chats       ChatStore
	llm         LLMProvider
	temperature float64
	logger      *slog.Logger
	config      config.ChatConfig
}

func NewChatService(
	authorizer *ContactAuthorizer,
	records ContextStore,
	news NewsStore,
	chats ChatStore,
	llm LLMProvider,
	temperature float64,
	logger *slog.Logger,
	cfg config.ChatConfig,
) *ChatService {
	return &ChatService{
		authorizer:  authorizer,
		records:     records,
		news:        news,
		chats:       chats,
		llm:         llm,
		temperature: temperature,
		logger:      logger.With("component", "chat"),
		config:      cfg,
	}
}

func (s *ChatService) SendMessage(ctx context.Context, contactID, ownerUserID uuid.UUID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	contact, err := s.authorizer.Authorize(ctx, contactID, ownerUserID)
	if err != nil {
		return "", err
	}

	logger := s.logger.With("contact_id", contact.ID)
	snapshot := s.BuildContext(ctx, contact)

	s.saveMessage(ctx, logger, &domain.ChatMessage{
		ContactID: contact.ID,
		UserID:    ownerUserID,
		Role:      domain.RoleUser,
		Content:   message,
	})

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal context: %w", err)
	}
	contextPayload := fmt.Sprintf("Context for %s:\n%s", contact.FullName, payload)

	reply, err := s.llm.Complete(ctx, systemPrompt, contextPayload, message, s.temperature)
	if err != nil {
		return "", fmt.Errorf("complete chat: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		logger.Warn("language model returned no content, using fallback reply")
		reply = FallbackReply
	}

	s.saveMessage(ctx, logger, &domain.ChatMessage{
		ContactID:       contact.ID,
		UserID:          ownerUserID,
		Role:            domain.RoleAssistant,
		Content:         reply,
		ContextSnapshot: snapshot,
	})

	return reply, nil
}

// BuildContext gathers the bounded context for a contact. A failed read
// leaves its collection empty.
func (s *ChatService) BuildContext(ctx context.Context, contact *domain.Contact) *domain.ContactContext {
	logger := s.logger.With("contact_id", contact.ID)

	cc := &domain.ContactContext{
		Contact: domain.ContextContact{
			Name:                 contact.FullName,
			Position:             contact.Position,
			CompanyName:          contact.CompanyName,
			LinkedinURL:          contact.LinkedinURL,
			RelationshipSummary:  contact.RelationshipSummary,
			RelationshipPriority: contact.RelationshipPriority,
			LastInteractionAt:    contact.LastInteractionAt,
		},
		Tags:        []domain.ContextTag{},
		NotesRecent: []domain.ContextNote{},
		Reminders:   []domain.ContextRemind{},
		NewsRecent:  []domain.ContextNews{},
	}

	tags, err := s.records.ListTags(ctx, contact.ID, s.config.TagLimit)
	if err != nil {
		logger.Warn("failed to load tags", "error", err)
	}
	for _, t := range limit(tags, s.config.TagLimit) {
		cc.Tags = append(cc.Tags, domain.ContextTag{Name: t.Name, Priority: t.Priority})
	}

	notes, err := s.records.ListNotes(ctx, contact.ID, s.config.NoteLimit)
	if err != nil {
		logger.Warn("failed to load notes", "error", err)
	}
	for _, n := range limit(notes, s.config.NoteLimit) {
		cc.NotesRecent = append(cc.NotesRecent, domain.ContextNote{
			ID:        n.ID,
			Date:      n.Date(),
			IsMeeting: n.IsMeeting,
			Text:      truncate(n.Content, s.config.NoteMaxChars),
		})
	}

	reminders, err := s.records.ListReminders(ctx, contact.ID, s.config.ReminderLimit)
	if err != nil {
		logger.Warn("failed to load reminders", "error", err)
	}
	for _, r := range limit(reminders, s.config.ReminderLimit) {
		cc.Reminders = append(cc.Reminders, domain.ContextRemind{
			ID:    r.ID,
			DueAt: r.DueAt,
			Text:  truncate(r.Body, s.config.ReminderMaxChars),
		})
	}

	news, err := s.news.ListRecentNews(ctx, contact.ID, s.config.NewsLimit)
	if err != nil {
		logger.Warn("failed to load news", "error", err)
	}
	for _, n := range limit(news, s.config.NewsLimit) {
		cc.NewsRecent = append(cc.NewsRecent, domain.ContextNews{
			ID:    n.ID,
			Date:  n.PublishedAt,
			Title: n.Title,
			URL:   n.URL,
		})
	}

	return cc
}

func (s *ChatService) saveMessage(ctx context.Context, logger *slog.Logger, msg *domain.ChatMessage) {
	if err := s.chats.InsertChatMessage(ctx, msg); err != nil {
		logger.Warn("failed to save chat message", "role", msg.Role, "error", err)
	}
}

// limit guards against stores that ignore the requested limit.
func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
