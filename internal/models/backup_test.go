package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbase/internal/common"
)

func TestParseBackup_RoundTrip(t *testing.T) {
	src := BackupData{
		Talents:    []Talent{{ID: "t1", Name: "Ayu", PricePerProject: 1500000}},
		Projects:   []Project{{ID: "p1", Name: "Launch", Status: ProjectStatusActive}},
		Categories: []Category{{ID: "c1", Name: "Model", SortOrder: 0}},
		Bookings:   []Booking{{ID: "b1", TalentID: "t1", Title: "Fitting"}},
		Settings:   DefaultSettings(),
	}

	raw, err := json.Marshal(src)
	require.NoError(t, err)

	parsed, err := ParseBackup(raw)
	require.NoError(t, err)
	assert.Equal(t, src.Talents, parsed.Talents)
	assert.Equal(t, src.Projects, parsed.Projects)
	assert.Equal(t, src.Settings, parsed.Settings)
}

func TestParseBackup_RejectsNonJSON(t *testing.T) {
	_, err := ParseBackup([]byte("not json at all"))
	assert.ErrorIs(t, err, common.ErrInvalidBackupFormat)
}

func TestParseBackup_RejectsMissingCollection(t *testing.T) {
	// No "bookings" key.
	raw := []byte(`{"talents":[],"projects":[],"categories":[],"settings":{}}`)
	_, err := ParseBackup(raw)
	assert.ErrorIs(t, err, common.ErrInvalidBackupFormat)
}

func TestParseBackup_ToleratesUnknownFieldsAndMissingLogs(t *testing.T) {
	raw := []byte(`{
		"talents":[], "projects":[], "categories":[], "bookings":[],
		"settings":{"darkMode":true},
		"someFutureField": {"x": 1}
	}`)
	parsed, err := ParseBackup(raw)
	require.NoError(t, err)
	assert.Nil(t, parsed.ConversationLogs)
	assert.True(t, parsed.Settings.DarkMode)
	// Fields absent from the persisted settings heal to defaults.
	assert.Equal(t, DefaultSettings().DefaultCurrency, parsed.Settings.DefaultCurrency)
}

func TestPatch_Apply_TouchesOnlyPatchedFields(t *testing.T) {
	talent := Talent{ID: "t1", Name: "Ayu", Favorite: false, PricePerProject: 100}
	name := "Ayu Lestari"
	fav := true

	TalentPatch{Name: &name, Favorite: &fav}.Apply(&talent)

	assert.Equal(t, "Ayu Lestari", talent.Name)
	assert.True(t, talent.Favorite)
	assert.Equal(t, float64(100), talent.PricePerProject)
	assert.Equal(t, "t1", talent.ID)
}
