// Package syncer implements the sync coordinator: a single-flight push/pull
// protocol between the local entity store and the remote authority, plus the
// translation between the local records and the remote wire representation.
package syncer

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"talentbase/internal/models"
)

// The remote re-keys every entity (local id -> odId), encodes numerics as
// decimal strings, and addresses category/talent references through its own
// integer identifier space. Remote integer ids are positional: 1-based index
// in sort order for categories, 1-based roster order for talents. Pull
// performs the inverse mapping.

// Dataset is the whole-dataset payload exchanged with the remote.
type Dataset struct {
	Talents          []RemoteTalent          `json:"talents"`
	Projects         []RemoteProject         `json:"projects"`
	Categories       []RemoteCategory        `json:"categories"`
	Bookings         []RemoteBooking         `json:"bookings"`
	ConversationLogs []RemoteConversationLog `json:"conversationLogs"`
	Settings         RemoteSettings          `json:"settings"`
}

type RemoteTalent struct {
	OdID            string            `json:"odId"`
	Name            string            `json:"name"`
	CategoryID      int               `json:"categoryId"`
	Gender          string            `json:"gender"`
	Photos          []string          `json:"photos"`
	ProfilePhoto    string            `json:"profilePhoto,omitempty"`
	PhoneNumbers    []string          `json:"phoneNumbers"`
	SocialMedia     map[string]string `json:"socialMedia,omitempty"`
	PricePerProject string            `json:"pricePerProject"`
	Currency        string            `json:"currency"`
	Notes           string            `json:"notes,omitempty"`
	Rating          *float64          `json:"rating,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	Favorite        bool              `json:"favorite"`
	CreatedAt       time.Time         `json:"createdAt"`
	LastPhotoUpdate time.Time         `json:"lastPhotoUpdate"`
}

type RemoteAssignment struct {
	TalentID    int     `json:"talentId"`
	CustomPrice *string `json:"customPrice,omitempty"`
	BookingID   string  `json:"bookingId,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type RemoteProject struct {
	OdID         string             `json:"odId"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	StartDate    time.Time          `json:"startDate"`
	EndDate      time.Time          `json:"endDate"`
	Status       string             `json:"status"`
	Assignments  []RemoteAssignment `json:"assignments"`
	ProfitMargin string             `json:"profitMargin"`
	Currency     string             `json:"currency"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type RemoteCategory struct {
	OdID          string `json:"odId"`
	RemoteID      int    `json:"remoteId"`
	Name          string `json:"name"`
	LocalizedName string `json:"localizedName,omitempty"`
	SortOrder     int    `json:"sortOrder"`
}

type RemoteBooking struct {
	OdID      string    `json:"odId"`
	TalentID  int       `json:"talentId"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	AllDay    bool      `json:"allDay"`
	Notes     string    `json:"notes,omitempty"`
	ProjectID string    `json:"projectId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RemoteConversationLog struct {
	OdID     string    `json:"odId"`
	TalentID int       `json:"talentId"`
	At       time.Time `json:"at"`
	Notes    string    `json:"notes,omitempty"`
	Type     string    `json:"type"`
}

type RemoteSettings struct {
	ReminderEnabled     bool                     `json:"reminderEnabled"`
	ReminderDayOfMonth  int                      `json:"reminderDayOfMonth"`
	DefaultProfitMargin string                   `json:"defaultProfitMargin"`
	DefaultCurrency     string                   `json:"defaultCurrency"`
	LastReminderDate    *time.Time               `json:"lastReminderDate,omitempty"`
	ViewMode            string                   `json:"viewMode"`
	SortBy              string                   `json:"sortBy"`
	DarkMode            bool                     `json:"darkMode"`
	WhatsAppMessage     string                   `json:"whatsAppMessage"`
	MessageTemplates    []models.MessageTemplate `json:"messageTemplates"`
}

// toWire translates a local snapshot into the remote representation.
func toWire(data *models.BackupData) *Dataset {
	categories := make([]models.Category, len(data.Categories))
	copy(categories, data.Categories)
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	categoryNum := make(map[string]int, len(categories))
	for i, c := range categories {
		categoryNum[c.ID] = i + 1
	}
	talentNum := make(map[string]int, len(data.Talents))
	for i, t := range data.Talents {
		talentNum[t.ID] = i + 1
	}

	ds := &Dataset{
		Talents:          make([]RemoteTalent, 0, len(data.Talents)),
		Projects:         make([]RemoteProject, 0, len(data.Projects)),
		Categories:       make([]RemoteCategory, 0, len(categories)),
		Bookings:         make([]RemoteBooking, 0, len(data.Bookings)),
		ConversationLogs: make([]RemoteConversationLog, 0, len(data.ConversationLogs)),
		Settings:         settingsToWire(data.Settings),
	}

	for i, c := range categories {
		ds.Categories = append(ds.Categories, RemoteCategory{
			OdID:          c.ID,
			RemoteID:      i + 1,
			Name:          c.Name,
			LocalizedName: c.LocalizedName,
			SortOrder:     c.SortOrder,
		})
	}

	for _, t := range data.Talents {
		ds.Talents = append(ds.Talents, RemoteTalent{
			OdID:            t.ID,
			Name:            t.Name,
			CategoryID:      categoryNum[t.CategoryID],
			Gender:          string(t.Gender),
			Photos:          t.Photos,
			ProfilePhoto:    t.ProfilePhoto,
			PhoneNumbers:    t.PhoneNumbers,
			SocialMedia:     t.SocialMedia,
			PricePerProject: formatNumber(t.PricePerProject),
			Currency:        t.Currency,
			Notes:           t.Notes,
			Rating:          t.Rating,
			Tags:            t.Tags,
			Favorite:        t.Favorite,
			CreatedAt:       t.CreatedAt,
			LastPhotoUpdate: t.LastPhotoUpdate,
		})
	}

	for _, p := range data.Projects {
		assignments := make([]RemoteAssignment, 0, len(p.Assignments))
		for _, a := range p.Assignments {
			ra := RemoteAssignment{
				TalentID:  talentNum[a.TalentID],
				BookingID: a.BookingID,
				Notes:     a.Notes,
			}
			if a.CustomPrice != nil {
				v := formatNumber(*a.CustomPrice)
				ra.CustomPrice = &v
			}
			assignments = append(assignments, ra)
		}
		ds.Projects = append(ds.Projects, RemoteProject{
			OdID:         p.ID,
			Name:         p.Name,
			Description:  p.Description,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Status:       string(p.Status),
			Assignments:  assignments,
			ProfitMargin: formatNumber(p.ProfitMargin),
			Currency:     p.Currency,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}

	for _, b := range data.Bookings {
		ds.Bookings = append(ds.Bookings, RemoteBooking{
			OdID:      b.ID,
			TalentID:  talentNum[b.TalentID],
			Title:     b.Title,
			Location:  b.Location,
			StartAt:   b.StartAt,
			EndAt:     b.EndAt,
			AllDay:    b.AllDay,
			Notes:     b.Notes,
			ProjectID: b.ProjectID,
			CreatedAt: b.CreatedAt,
		})
	}

	for _, c := range data.ConversationLogs {
		ds.ConversationLogs = append(ds.ConversationLogs, RemoteConversationLog{
			OdID:     c.ID,
			TalentID: talentNum[c.TalentID],
			At:       c.At,
			Notes:    c.Notes,
			Type:     string(c.Type),
		})
	}

	return ds
}

// fromWire performs the inverse translation. Reference integers outside the
// dataset's own identifier space come back as empty (dangling) ids; readers
// resolve those to the Unknown sentinel.
func fromWire(ds *Dataset) (*models.BackupData, error) {
	categoryByNum := make(map[int]string, len(ds.Categories))
	for i, c := range ds.Categories {
		num := c.RemoteID
		if num == 0 {
			num = i + 1
		}
		categoryByNum[num] = c.OdID
	}
	talentByNum := make(map[int]string, len(ds.Talents))
	for i, t := range ds.Talents {
		talentByNum[i+1] = t.OdID
	}

	data := &models.BackupData{
		Talents:          make([]models.Talent, 0, len(ds.Talents)),
		Projects:         make([]models.Project, 0, len(ds.Projects)),
		Categories:       make([]models.Category, 0, len(ds.Categories)),
		Bookings:         make([]models.Booking, 0, len(ds.Bookings)),
		ConversationLogs: make([]models.ConversationLog, 0, len(ds.ConversationLogs)),
	}

	for _, c := range ds.Categories {
		data.Categories = append(data.Categories, models.Category{
			ID:            c.OdID,
			Name:          c.Name,
			LocalizedName: c.LocalizedName,
			SortOrder:     c.SortOrder,
		})
	}

	for _, t := range ds.Talents {
		price, err := parseNumber(t.PricePerProject, "pricePerProject")
		if err != nil {
			return nil, err
		}
		data.Talents = append(data.Talents, models.Talent{
			ID:              t.OdID,
			Name:            t.Name,
			CategoryID:      categoryByNum[t.CategoryID],
			Gender:          models.Gender(t.Gender),
			Photos:          emptyIfNil(t.Photos),
			ProfilePhoto:    t.ProfilePhoto,
			PhoneNumbers:    emptyIfNil(t.PhoneNumbers),
			SocialMedia:     t.SocialMedia,
			PricePerProject: price,
			Currency:        t.Currency,
			Notes:           t.Notes,
			Rating:          t.Rating,
			Tags:            t.Tags,
			Favorite:        t.Favorite,
			CreatedAt:       t.CreatedAt,
			LastPhotoUpdate: t.LastPhotoUpdate,
		})
	}

	for _, p := range ds.Projects {
		margin, err := parseNumber(p.ProfitMargin, "profitMargin")
		if err != nil {
			return nil, err
		}
		assignments := make([]models.Assignment, 0, len(p.Assignments))
		for _, ra := range p.Assignments {
			a := models.Assignment{
				TalentID:  talentByNum[ra.TalentID],
				BookingID: ra.BookingID,
				Notes:     ra.Notes,
			}
			if ra.CustomPrice != nil {
				v, err := parseNumber(*ra.CustomPrice, "customPrice")
				if err != nil {
					return nil, err
				}
				a.CustomPrice = &v
			}
			assignments = append(assignments, a)
		}
		data.Projects = append(data.Projects, models.Project{
			ID:           p.OdID,
			Name:         p.Name,
			Description:  p.Description,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Status:       models.ProjectStatus(p.Status),
			Assignments:  assignments,
			ProfitMargin: margin,
			Currency:     p.Currency,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}

	for _, b := range ds.Bookings {
		data.Bookings = append(data.Bookings, models.Booking{
			ID:        b.OdID,
			TalentID:  talentByNum[b.TalentID],
			Title:     b.Title,
			Location:  b.Location,
			StartAt:   b.StartAt,
			EndAt:     b.EndAt,
			AllDay:    b.AllDay,
			Notes:     b.Notes,
			ProjectID: b.ProjectID,
			CreatedAt: b.CreatedAt,
		})
	}

	for _, c := range ds.ConversationLogs {
		data.ConversationLogs = append(data.ConversationLogs, models.ConversationLog{
			ID:       c.OdID,
			TalentID: talentByNum[c.TalentID],
			At:       c.At,
			Notes:    c.Notes,
			Type:     models.ConversationType(c.Type),
		})
	}

	settings, err := settingsFromWire(ds.Settings)
	if err != nil {
		return nil, err
	}
	data.Settings = settings

	return data, nil
}

func settingsToWire(s models.Settings) RemoteSettings {
	return RemoteSettings{
		ReminderEnabled:     s.ReminderEnabled,
		ReminderDayOfMonth:  s.ReminderDayOfMonth,
		DefaultProfitMargin: formatNumber(s.DefaultProfitMargin),
		DefaultCurrency:     s.DefaultCurrency,
		LastReminderDate:    s.LastReminderDate,
		ViewMode:            s.ViewMode,
		SortBy:              s.SortBy,
		DarkMode:            s.DarkMode,
		WhatsAppMessage:     s.WhatsAppMessage,
		MessageTemplates:    s.MessageTemplates,
	}
}

func settingsFromWire(rs RemoteSettings) (models.Settings, error) {
	margin, err := parseNumber(rs.DefaultProfitMargin, "defaultProfitMargin")
	if err != nil {
		return models.Settings{}, err
	}
	s := models.DefaultSettings()
	s.ReminderEnabled = rs.ReminderEnabled
	s.ReminderDayOfMonth = rs.ReminderDayOfMonth
	s.DefaultProfitMargin = margin
	s.DefaultCurrency = rs.DefaultCurrency
	s.LastReminderDate = rs.LastReminderDate
	s.ViewMode = rs.ViewMode
	s.SortBy = rs.SortBy
	s.DarkMode = rs.DarkMode
	s.WhatsAppMessage = rs.WhatsAppMessage
	if rs.MessageTemplates != nil {
		s.MessageTemplates = rs.MessageTemplates
	}
	return s, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseNumber(s, field string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return v, nil
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
