// Package models defines the business records owned by the talentbase data
// layer, the partial-patch types used for updates, and the backup payloads.
package models

import "time"

// Gender classifies a talent.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Talent is a bookable person on the roster.
//
// CategoryID and the photo references are soft links: deleting the target
// does not cascade here, readers fall back to a sentinel on lookup misses.
type Talent struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	CategoryID      string            `json:"categoryId"`
	Gender          Gender            `json:"gender"`
	Photos          []string          `json:"photos"`
	ProfilePhoto    string            `json:"profilePhoto,omitempty"`
	PhoneNumbers    []string          `json:"phoneNumbers"`
	SocialMedia     map[string]string `json:"socialMedia,omitempty"`
	PricePerProject float64           `json:"pricePerProject"`
	Currency        string            `json:"currency"`
	Notes           string            `json:"notes,omitempty"`
	Rating          *float64          `json:"rating,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	Favorite        bool              `json:"favorite"`
	CreatedAt       time.Time         `json:"createdAt"`
	LastPhotoUpdate time.Time         `json:"lastPhotoUpdate"`
}

func (t Talent) RecordID() string { return t.ID }

// TalentPatch carries a partial update: nil fields keep their prior values.
type TalentPatch struct {
	Name            *string            `json:"name,omitempty"`
	CategoryID      *string            `json:"categoryId,omitempty"`
	Gender          *Gender            `json:"gender,omitempty"`
	Photos          *[]string          `json:"photos,omitempty"`
	ProfilePhoto    *string            `json:"profilePhoto,omitempty"`
	PhoneNumbers    *[]string          `json:"phoneNumbers,omitempty"`
	SocialMedia     *map[string]string `json:"socialMedia,omitempty"`
	PricePerProject *float64           `json:"pricePerProject,omitempty"`
	Currency        *string            `json:"currency,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	Rating          *float64           `json:"rating,omitempty"`
	Tags            *[]string          `json:"tags,omitempty"`
	Favorite        *bool              `json:"favorite,omitempty"`
	LastPhotoUpdate *time.Time         `json:"lastPhotoUpdate,omitempty"`
}

// Apply merges the patch onto t.
func (p TalentPatch) Apply(t *Talent) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Gender != nil {
		t.Gender = *p.Gender
	}
	if p.Photos != nil {
		t.Photos = *p.Photos
	}
	if p.ProfilePhoto != nil {
		t.ProfilePhoto = *p.ProfilePhoto
	}
	if p.PhoneNumbers != nil {
		t.PhoneNumbers = *p.PhoneNumbers
	}
	if p.SocialMedia != nil {
		t.SocialMedia = *p.SocialMedia
	}
	if p.PricePerProject != nil {
		t.PricePerProject = *p.PricePerProject
	}
	if p.Currency != nil {
		t.Currency = *p.Currency
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Rating != nil {
		t.Rating = p.Rating
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.Favorite != nil {
		t.Favorite = *p.Favorite
	}
	if p.LastPhotoUpdate != nil {
		t.LastPhotoUpdate = *p.LastPhotoUpdate
	}
}
