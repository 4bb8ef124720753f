package models

import "time"

// Booking is a calendar reservation for a talent, optionally attached to a
// project. TalentID and ProjectID are soft references.
type Booking struct {
	ID        string    `json:"id"`
	TalentID  string    `json:"talentId"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	AllDay    bool      `json:"allDay"`
	Notes     string    `json:"notes,omitempty"`
	ProjectID string    `json:"projectId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b Booking) RecordID() string { return b.ID }

// BookingPatch carries a partial update: nil fields keep their prior values.
type BookingPatch struct {
	TalentID  *string    `json:"talentId,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Location  *string    `json:"location,omitempty"`
	StartAt   *time.Time `json:"startAt,omitempty"`
	EndAt     *time.Time `json:"endAt,omitempty"`
	AllDay    *bool      `json:"allDay,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	ProjectID *string    `json:"projectId,omitempty"`
}

func (bp BookingPatch) Apply(b *Booking) {
	if bp.TalentID != nil {
		b.TalentID = *bp.TalentID
	}
	if bp.Title != nil {
		b.Title = *bp.Title
	}
	if bp.Location != nil {
		b.Location = *bp.Location
	}
	if bp.StartAt != nil {
		b.StartAt = *bp.StartAt
	}
	if bp.EndAt != nil {
		b.EndAt = *bp.EndAt
	}
	if bp.AllDay != nil {
		b.AllDay = *bp.AllDay
	}
	if bp.Notes != nil {
		b.Notes = *bp.Notes
	}
	if bp.ProjectID != nil {
		b.ProjectID = *bp.ProjectID
	}
}
