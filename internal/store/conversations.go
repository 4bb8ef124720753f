package store

import (
	"context"

	"talentbase/internal/models"
)

// ListConversationLogs returns every recorded contact moment.
func (s *Store) ListConversationLogs(ctx context.Context) ([]models.ConversationLog, error) {
	return s.conversations.List(ctx)
}

// GetConversationLog returns the log with the given id, or (nil, nil) when
// absent.
func (s *Store) GetConversationLog(ctx context.Context, id string) (*models.ConversationLog, error) {
	return s.conversations.Get(ctx, id)
}

// CreateConversationLog persists a new log entry. The timestamp defaults to
// now when the caller leaves it zero.
func (s *Store) CreateConversationLog(ctx context.Context, c models.ConversationLog) (*models.ConversationLog, error) {
	c.ID = s.ids.NewID()
	if c.At.IsZero() {
		c.At = s.clock.Now()
	}
	if c.Type == "" {
		c.Type = models.ConversationTypeOther
	}

	if err := s.conversations.Append(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateConversationLog merges the patch onto the stored log. Returns
// ErrNotFound when the id is absent.
func (s *Store) UpdateConversationLog(ctx context.Context, id string, patch models.ConversationLogPatch) (*models.ConversationLog, error) {
	return s.conversations.Update(ctx, id, func(c *models.ConversationLog) { patch.Apply(c) })
}

// DeleteConversationLog removes the log if present.
func (s *Store) DeleteConversationLog(ctx context.Context, id string) (bool, error) {
	return s.conversations.Delete(ctx, id)
}
