package store

import (
	"context"

	"talentbase/internal/common"
	"talentbase/internal/models"
)

// ListCategories returns all categories. The very first call on an empty
// substrate seeds and persists the default set before returning it.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// GetCategory returns the category with the given id, or (nil, nil) when
// absent.
func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return s.categories.Get(ctx, id)
}

// CreateCategory persists a new user category after the default set.
func (s *Store) CreateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	c.ID = s.ids.NewID()

	if err := s.categories.Append(ctx, c); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "category created", "id", c.ID)
	return &c, nil
}

// UpdateCategory merges the patch onto the stored category. Returns
// ErrNotFound when the id is absent.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (*models.Category, error) {
	return s.categories.Update(ctx, id, func(c *models.Category) { patch.Apply(c) })
}

// DeleteCategory removes the category if present. Talents referencing it
// keep their dangling id and resolve to Unknown.
func (s *Store) DeleteCategory(ctx context.Context, id string) (bool, error) {
	return s.categories.Delete(ctx, id)
}

// CategoryName resolves a category id for display, falling back to the
// Unknown sentinel on a dangling reference.
func (s *Store) CategoryName(ctx context.Context, id string) (string, error) {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return "", err
	}
	if c == nil {
		return common.UnknownName, nil
	}
	return c.Name, nil
}
