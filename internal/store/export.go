package store

import (
	"context"
	"encoding/json"
	"fmt"

	"talentbase/internal/models"
)

// ExportAll snapshots every collection into a BackupData.
func (s *Store) ExportAll(ctx context.Context) (*models.BackupData, error) {
	talents, err := s.ListTalents(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.ListConversationLogs(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	return &models.BackupData{
		Talents:          talents,
		Projects:         projects,
		Categories:       categories,
		Bookings:         bookings,
		ConversationLogs: logs,
		Settings:         settings,
	}, nil
}

// ImportAll replaces every collection wholesale with the supplied data. The
// write is a single atomic batch: either all collections are replaced or
// none is, so a failure can never leave the store half-imported.
func (s *Store) ImportAll(ctx context.Context, data *models.BackupData) error {
	if data == nil {
		return fmt.Errorf("import: nil backup data")
	}

	// Hold every collection lock for the duration of the swap so no reader
	// observes a mix of old and new collections. Fixed acquisition order.
	s.talents.mu.Lock()
	defer s.talents.mu.Unlock()
	s.projects.mu.Lock()
	defer s.projects.mu.Unlock()
	s.categories.mu.Lock()
	defer s.categories.mu.Unlock()
	s.bookings.mu.Lock()
	defer s.bookings.mu.Unlock()
	s.conversations.mu.Lock()
	defer s.conversations.mu.Unlock()
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()

	values := make(map[string][]byte, 6)
	for key, v := range map[string]any{
		keyTalents:       normalizeTalents(data.Talents),
		keyProjects:      normalizeProjects(data.Projects),
		keyCategories:    normalizeCategories(data.Categories),
		keyBookings:      normalizeBookings(data.Bookings),
		keyConversations: normalizeLogs(data.ConversationLogs),
		keySettings:      data.Settings,
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		values[key] = raw
	}

	if err := s.kv.SetMany(ctx, values); err != nil {
		return err
	}
	s.log.Info(ctx, "dataset imported",
		"talents", len(data.Talents),
		"projects", len(data.Projects),
		"bookings", len(data.Bookings),
	)
	return nil
}

// nil slices marshal as null; persist them as empty collections instead so
// export/import round trips byte-for-byte.
func normalizeTalents(v []models.Talent) []models.Talent {
	if v == nil {
		return []models.Talent{}
	}
	return v
}

func normalizeProjects(v []models.Project) []models.Project {
	if v == nil {
		return []models.Project{}
	}
	return v
}

func normalizeCategories(v []models.Category) []models.Category {
	if v == nil {
		return []models.Category{}
	}
	return v
}

func normalizeBookings(v []models.Booking) []models.Booking {
	if v == nil {
		return []models.Booking{}
	}
	return v
}

func normalizeLogs(v []models.ConversationLog) []models.ConversationLog {
	if v == nil {
		return []models.ConversationLog{}
	}
	return v
}
