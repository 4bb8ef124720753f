package store

import (
	"context"
	"sort"
	"time"

	"talentbase/internal/models"
)

// CostBreakdown is the derived pricing of a project.
type CostBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	Profit   float64 `json:"profit"`
	Total    float64 `json:"total"`
}

// photoStaleAfter is the age at which a talent's photos are considered
// stale. The boundary is inclusive: exactly 30 days counts as stale.
const photoStaleAfter = 30 * 24 * time.Hour

// CalculateProjectCosts computes the price breakdown for a set of
// assignments. A custom price always wins, even when the referenced talent
// no longer exists; an assignment with neither a custom price nor a backing
// talent contributes zero. Pure: no I/O, no store state.
func CalculateProjectCosts(talents []models.Talent, assignments []models.Assignment, profitMarginPercent float64) CostBreakdown {
	prices := make(map[string]float64, len(talents))
	for _, t := range talents {
		prices[t.ID] = t.PricePerProject
	}

	var subtotal float64
	for _, a := range assignments {
		if a.CustomPrice != nil {
			subtotal += *a.CustomPrice
			continue
		}
		subtotal += prices[a.TalentID]
	}

	profit := subtotal * profitMarginPercent / 100
	return CostBreakdown{Subtotal: subtotal, Profit: profit, Total: subtotal + profit}
}

// NeedsPhotoUpdate reports whether the talent's photos are at least 30 days
// old relative to now.
func NeedsPhotoUpdate(t models.Talent, now time.Time) bool {
	return now.Sub(t.LastPhotoUpdate) >= photoStaleAfter
}

// StaleTalents returns the talents whose photos need an update, oldest
// lastPhotoUpdate first.
func (s *Store) StaleTalents(ctx context.Context) ([]models.Talent, error) {
	talents, err := s.ListTalents(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	stale := make([]models.Talent, 0, len(talents))
	for _, t := range talents {
		if NeedsPhotoUpdate(t, now) {
			stale = append(stale, t)
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		return stale[i].LastPhotoUpdate.Before(stale[j].LastPhotoUpdate)
	})
	return stale, nil
}

// MarkTalentPhotoUpdated stamps the talent's lastPhotoUpdate with the
// current time.
func (s *Store) MarkTalentPhotoUpdated(ctx context.Context, id string) (*models.Talent, error) {
	now := s.clock.Now()
	return s.talents.Update(ctx, id, func(t *models.Talent) { t.LastPhotoUpdate = now })
}

// ProjectCosts is the store-level convenience around CalculateProjectCosts:
// it loads the roster and prices the given project.
func (s *Store) ProjectCosts(ctx context.Context, p models.Project) (CostBreakdown, error) {
	talents, err := s.ListTalents(ctx)
	if err != nil {
		return CostBreakdown{}, err
	}
	return CalculateProjectCosts(talents, p.Assignments, p.ProfitMargin), nil
}
