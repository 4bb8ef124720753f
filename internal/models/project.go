package models

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusDraft       ProjectStatus = "draft"
	ProjectStatusActive      ProjectStatus = "active"
	ProjectStatusCompleted   ProjectStatus = "completed"
	ProjectStatusNegotiating ProjectStatus = "negotiating"
	ProjectStatusCancelled   ProjectStatus = "cancelled"
	ProjectStatusPostponed   ProjectStatus = "postponed"
)

// Assignment links a project to a talent, optionally overriding that
// talent's price. TalentID is a soft reference.
type Assignment struct {
	TalentID    string   `json:"talentId"`
	CustomPrice *float64 `json:"customPrice,omitempty"`
	BookingID   string   `json:"bookingId,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// Project is a booked job covering one or more talents.
type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	StartDate    time.Time     `json:"startDate"`
	EndDate      time.Time     `json:"endDate"`
	Status       ProjectStatus `json:"status"`
	Assignments  []Assignment  `json:"assignments"`
	ProfitMargin float64       `json:"profitMargin"`
	Currency     string        `json:"currency"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (p Project) RecordID() string { return p.ID }

// ProjectPatch carries a partial update: nil fields keep their prior values.
type ProjectPatch struct {
	Name         *string        `json:"name,omitempty"`
	Description  *string        `json:"description,omitempty"`
	StartDate    *time.Time     `json:"startDate,omitempty"`
	EndDate      *time.Time     `json:"endDate,omitempty"`
	Status       *ProjectStatus `json:"status,omitempty"`
	Assignments  *[]Assignment  `json:"assignments,omitempty"`
	ProfitMargin *float64       `json:"profitMargin,omitempty"`
	Currency     *string        `json:"currency,omitempty"`
}

func (pp ProjectPatch) Apply(p *Project) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.StartDate != nil {
		p.StartDate = *pp.StartDate
	}
	if pp.EndDate != nil {
		p.EndDate = *pp.EndDate
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.Assignments != nil {
		p.Assignments = *pp.Assignments
	}
	if pp.ProfitMargin != nil {
		p.ProfitMargin = *pp.ProfitMargin
	}
	if pp.Currency != nil {
		p.Currency = *pp.Currency
	}
}
