package syncer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbase/internal/models"
)

func sampleSnapshot() *models.BackupData {
	price := 900.0
	return &models.BackupData{
		Categories: []models.Category{
			// Deliberately out of sort order; the wire form sorts first.
			{ID: "cat-dancer", Name: "Dancer", SortOrder: 2},
			{ID: "cat-model", Name: "Model", SortOrder: 0},
			{ID: "cat-mc", Name: "MC", SortOrder: 1},
		},
		Talents: []models.Talent{
			{ID: "t-1", Name: "Ayu", CategoryID: "cat-model", PricePerProject: 1500.5, Photos: []string{}, PhoneNumbers: []string{}},
			{ID: "t-2", Name: "Sari", CategoryID: "cat-dancer", PricePerProject: 2000, Photos: []string{}, PhoneNumbers: []string{}},
		},
		Projects: []models.Project{{
			ID:           "p-1",
			Name:         "Mall Opening",
			Status:       models.ProjectStatusActive,
			ProfitMargin: 17.5,
			Assignments: []models.Assignment{
				{TalentID: "t-2", CustomPrice: &price},
				{TalentID: "t-1"},
			},
		}},
		Bookings: []models.Booking{{
			ID:       "b-1",
			TalentID: "t-1",
			Title:    "Fitting",
			StartAt:  time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			EndAt:    time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		}},
		ConversationLogs: []models.ConversationLog{{
			ID:       "c-1",
			TalentID: "t-2",
			At:       time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
			Type:     models.ConversationTypeWhatsApp,
		}},
		Settings: models.DefaultSettings(),
	}
}

func TestToWire_NumbersBecomeDecimalStrings(t *testing.T) {
	ds := toWire(sampleSnapshot())

	require.Len(t, ds.Talents, 2)
	assert.Equal(t, "1500.5", ds.Talents[0].PricePerProject)
	assert.Equal(t, "2000", ds.Talents[1].PricePerProject)

	require.Len(t, ds.Projects, 1)
	assert.Equal(t, "17.5", ds.Projects[0].ProfitMargin)
	require.NotNil(t, ds.Projects[0].Assignments[0].CustomPrice)
	assert.Equal(t, "900", *ds.Projects[0].Assignments[0].CustomPrice)
	assert.Nil(t, ds.Projects[0].Assignments[1].CustomPrice)
}

func TestToWire_CategoryReferencesArePositionalInSortOrder(t *testing.T) {
	ds := toWire(sampleSnapshot())

	require.Len(t, ds.Categories, 3)
	// Sorted by SortOrder: Model, MC, Dancer; ids are 1-based positions.
	assert.Equal(t, "cat-model", ds.Categories[0].OdID)
	assert.Equal(t, 1, ds.Categories[0].RemoteID)
	assert.Equal(t, "cat-dancer", ds.Categories[2].OdID)
	assert.Equal(t, 3, ds.Categories[2].RemoteID)

	// Ayu is in cat-model (position 1), Sari in cat-dancer (position 3).
	assert.Equal(t, 1, ds.Talents[0].CategoryID)
	assert.Equal(t, 3, ds.Talents[1].CategoryID)
}

func TestToWire_TalentReferencesAreRosterPositions(t *testing.T) {
	ds := toWire(sampleSnapshot())

	// t-2 is second in the roster, t-1 first.
	assert.Equal(t, 2, ds.Projects[0].Assignments[0].TalentID)
	assert.Equal(t, 1, ds.Projects[0].Assignments[1].TalentID)
	assert.Equal(t, 1, ds.Bookings[0].TalentID)
	assert.Equal(t, 2, ds.ConversationLogs[0].TalentID)
}

func TestWire_RoundTripRestoresLocalForm(t *testing.T) {
	original := sampleSnapshot()

	restored, err := fromWire(toWire(original))
	require.NoError(t, err)

	assert.Equal(t, original.Talents, restored.Talents)
	assert.Equal(t, original.Projects, restored.Projects)
	assert.Equal(t, original.Bookings, restored.Bookings)
	assert.Equal(t, original.ConversationLogs, restored.ConversationLogs)
	assert.Equal(t, original.Settings, restored.Settings)
	assert.ElementsMatch(t, original.Categories, restored.Categories)
}

func TestFromWire_UnknownReferenceBecomesDanglingID(t *testing.T) {
	ds := toWire(sampleSnapshot())
	ds.Bookings[0].TalentID = 99

	restored, err := fromWire(ds)
	require.NoError(t, err)
	assert.Equal(t, "", restored.Bookings[0].TalentID)
}

func TestFromWire_BadNumericFails(t *testing.T) {
	ds := toWire(sampleSnapshot())
	ds.Talents[0].PricePerProject = "1,500"

	_, err := fromWire(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pricePerProject")
}

func TestFromWire_EmptyNumericStringIsZero(t *testing.T) {
	ds := toWire(sampleSnapshot())
	ds.Talents[0].PricePerProject = ""

	restored, err := fromWire(ds)
	require.NoError(t, err)
	assert.Equal(t, 0.0, restored.Talents[0].PricePerProject)
}
