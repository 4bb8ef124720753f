package store

import (
	"context"
	"encoding/json"
	"fmt"

	"talentbase/internal/common"
	"talentbase/internal/models"
)

// Settings returns the singleton preferences record. Nothing persisted yet
// yields the defaults; a persisted partial record is overlaid onto the
// defaults so missing fields self-heal instead of failing.
func (s *Store) Settings(ctx context.Context) (models.Settings, error) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	return s.loadSettings(ctx)
}

// SaveSettings merges the patch onto the current settings, persists the
// result and returns it.
func (s *Store) SaveSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	patch.Apply(&settings)

	if err := s.saveSettings(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Store) loadSettings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	raw, err := s.kv.Get(ctx, keySettings)
	if err != nil {
		return models.Settings{}, err
	}
	if raw == nil {
		return settings, nil
	}

	// Unmarshal over the defaults: present fields overwrite, absent fields
	// keep their default values.
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %s: %v", common.ErrCorruptState, keySettings, err)
	}
	return settings, nil
}

func (s *Store) saveSettings(ctx context.Context, settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.kv.Set(ctx, keySettings, raw)
}
