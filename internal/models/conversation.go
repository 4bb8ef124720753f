package models

import "time"

// ConversationType classifies a contact moment with a talent.
type ConversationType string

const (
	ConversationTypeCall     ConversationType = "call"
	ConversationTypeWhatsApp ConversationType = "whatsapp"
	ConversationTypeMeeting  ConversationType = "meeting"
	ConversationTypeOther    ConversationType = "other"
)

// ConversationLog records a single contact moment with a talent.
type ConversationLog struct {
	ID       string           `json:"id"`
	TalentID string           `json:"talentId"`
	At       time.Time        `json:"at"`
	Notes    string           `json:"notes,omitempty"`
	Type     ConversationType `json:"type"`
}

func (c ConversationLog) RecordID() string { return c.ID }

// ConversationLogPatch carries a partial update: nil fields keep their prior
// values.
type ConversationLogPatch struct {
	TalentID *string           `json:"talentId,omitempty"`
	At       *time.Time        `json:"at,omitempty"`
	Notes    *string           `json:"notes,omitempty"`
	Type     *ConversationType `json:"type,omitempty"`
}

func (cp ConversationLogPatch) Apply(c *ConversationLog) {
	if cp.TalentID != nil {
		c.TalentID = *cp.TalentID
	}
	if cp.At != nil {
		c.At = *cp.At
	}
	if cp.Notes != nil {
		c.Notes = *cp.Notes
	}
	if cp.Type != nil {
		c.Type = *cp.Type
	}
}
