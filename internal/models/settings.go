package models

import "time"

// MessageTemplate is a reusable outbound-message body with placeholder
// tokens like {name} and {date}.
type MessageTemplate struct {
	Name             string `json:"name"`
	LocalizedName    string `json:"localizedName,omitempty"`
	Content          string `json:"content"`
	LocalizedContent string `json:"localizedContent,omitempty"`
	Type             string `json:"type,omitempty"`
}

// Settings is the process-wide singleton preferences record. It is lazily
// created with defaults on first read and mutated by partial-patch writes,
// never deleted.
type Settings struct {
	ReminderEnabled     bool              `json:"reminderEnabled"`
	ReminderDayOfMonth  int               `json:"reminderDayOfMonth"`
	DefaultProfitMargin float64           `json:"defaultProfitMargin"`
	DefaultCurrency     string            `json:"defaultCurrency"`
	LastReminderDate    *time.Time        `json:"lastReminderDate,omitempty"`
	ViewMode            string            `json:"viewMode"`
	SortBy              string            `json:"sortBy"`
	DarkMode            bool              `json:"darkMode"`
	WhatsAppMessage     string            `json:"whatsAppMessage"`
	MessageTemplates    []MessageTemplate `json:"messageTemplates"`
}

// DefaultSettings returns the baseline settings used when nothing is
// persisted yet and as the fallback for fields missing from a persisted
// partial record.
func DefaultSettings() Settings {
	return Settings{
		ReminderEnabled:     false,
		ReminderDayOfMonth:  1,
		DefaultProfitMargin: 20,
		DefaultCurrency:     "IDR",
		ViewMode:            "grid",
		SortBy:              "name",
		DarkMode:            false,
		WhatsAppMessage:     "Halo {name}, apakah kamu tersedia untuk project pada {date}?",
		MessageTemplates:    []MessageTemplate{},
	}
}

// SettingsPatch carries a partial update: nil fields keep their prior values.
type SettingsPatch struct {
	ReminderEnabled     *bool              `json:"reminderEnabled,omitempty"`
	ReminderDayOfMonth  *int               `json:"reminderDayOfMonth,omitempty"`
	DefaultProfitMargin *float64           `json:"defaultProfitMargin,omitempty"`
	DefaultCurrency     *string            `json:"defaultCurrency,omitempty"`
	LastReminderDate    *time.Time         `json:"lastReminderDate,omitempty"`
	ViewMode            *string            `json:"viewMode,omitempty"`
	SortBy              *string            `json:"sortBy,omitempty"`
	DarkMode            *bool              `json:"darkMode,omitempty"`
	WhatsAppMessage     *string            `json:"whatsAppMessage,omitempty"`
	MessageTemplates    *[]MessageTemplate `json:"messageTemplates,omitempty"`
}

func (sp SettingsPatch) Apply(s *Settings) {
	if sp.ReminderEnabled != nil {
		s.ReminderEnabled = *sp.ReminderEnabled
	}
	if sp.ReminderDayOfMonth != nil {
		s.ReminderDayOfMonth = *sp.ReminderDayOfMonth
	}
	if sp.DefaultProfitMargin != nil {
		s.DefaultProfitMargin = *sp.DefaultProfitMargin
	}
	if sp.DefaultCurrency != nil {
		s.DefaultCurrency = *sp.DefaultCurrency
	}
	if sp.LastReminderDate != nil {
		s.LastReminderDate = sp.LastReminderDate
	}
	if sp.ViewMode != nil {
		s.ViewMode = *sp.ViewMode
	}
	if sp.SortBy != nil {
		s.SortBy = *sp.SortBy
	}
	if sp.DarkMode != nil {
		s.DarkMode = *sp.DarkMode
	}
	if sp.WhatsAppMessage != nil {
		s.WhatsAppMessage = *sp.WhatsAppMessage
	}
	if sp.MessageTemplates != nil {
		s.MessageTemplates = *sp.MessageTemplates
	}
}
