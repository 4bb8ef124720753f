package store

import (
	"context"

	"talentbase/internal/common"
	"talentbase/internal/models"
)

// ListTalents returns every talent on the roster.
func (s *Store) ListTalents(ctx context.Context) ([]models.Talent, error) {
	return s.talents.List(ctx)
}

// GetTalent returns the talent with the given id, or (nil, nil) when absent.
func (s *Store) GetTalent(ctx context.Context, id string) (*models.Talent, error) {
	return s.talents.Get(ctx, id)
}

// CreateTalent persists a new talent. The id, createdAt and lastPhotoUpdate
// fields are stamped here; whatever the caller put in them is ignored.
func (s *Store) CreateTalent(ctx context.Context, t models.Talent) (*models.Talent, error) {
	now := s.clock.Now()
	t.ID = s.ids.NewID()
	t.CreatedAt = now
	t.LastPhotoUpdate = now
	if t.Photos == nil {
		t.Photos = []string{}
	}
	if t.PhoneNumbers == nil {
		t.PhoneNumbers = []string{}
	}

	if err := s.talents.Append(ctx, t); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "talent created", "id", t.ID)
	return &t, nil
}

// UpdateTalent merges the patch onto the stored talent. Omitted fields keep
// their prior values. Returns ErrNotFound when the id is absent.
func (s *Store) UpdateTalent(ctx context.Context, id string, patch models.TalentPatch) (*models.Talent, error) {
	return s.talents.Update(ctx, id, func(t *models.Talent) { patch.Apply(t) })
}

// DeleteTalent removes the talent if present. Projects and bookings that
// reference it are left untouched.
func (s *Store) DeleteTalent(ctx context.Context, id string) (bool, error) {
	return s.talents.Delete(ctx, id)
}

// TalentName resolves a talent id for display, falling back to the Unknown
// sentinel on a dangling reference.
func (s *Store) TalentName(ctx context.Context, id string) (string, error) {
	t, err := s.GetTalent(ctx, id)
	if err != nil {
		return "", err
	}
	if t == nil {
		return common.UnknownName, nil
	}
	return t.Name, nil
}
