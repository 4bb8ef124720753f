package store

import (
	"sync"

	"talentbase/internal/idgen"
	"talentbase/internal/kvstore"
	"talentbase/internal/logging"
	"talentbase/internal/models"
	"talentbase/internal/timex"
)

// Persisted collection keys. All entity-store keys live under the "store:"
// namespace; the template subsystem and the sync coordinator use their own.
const (
	keyTalents       = "store:talents"
	keyProjects      = "store:projects"
	keyCategories    = "store:categories"
	keyBookings      = "store:bookings"
	keyConversations = "store:conversation_logs"
	keySettings      = "store:settings"
)

// Store owns the canonical on-device representation of the business records.
type Store struct {
	kv    kvstore.Store
	ids   idgen.Generator
	clock timex.Clock
	log   logging.Logger

	talents       *collection[models.Talent]
	projects      *collection[models.Project]
	categories    *collection[models.Category]
	bookings      *collection[models.Booking]
	conversations *collection[models.ConversationLog]

	settingsMu sync.Mutex
}

// New constructs a Store over the given substrate. Passing nil for clock or
// log selects the real clock and a no-op logger.
func New(kv kvstore.Store, ids idgen.Generator, clock timex.Clock, log logging.Logger) *Store {
	if clock == nil {
		clock = timex.RealClock{}
	}
	if log == nil {
		log = logging.Nop()
	}

	s := &Store{
		kv:            kv,
		ids:           ids,
		clock:         clock,
		log:           log.With("component", "store"),
		talents:       newCollection[models.Talent](kv, keyTalents),
		projects:      newCollection[models.Project](kv, keyProjects),
		categories:    newCollection[models.Category](kv, keyCategories),
		bookings:      newCollection[models.Booking](kv, keyBookings),
		conversations: newCollection[models.ConversationLog](kv, keyConversations),
	}
	s.categories.seed = s.defaultCategories
	return s
}

// defaultCategories is the self-initializing category set persisted before
// any user category exists.
func (s *Store) defaultCategories() []models.Category {
	return []models.Category{
		{ID: s.ids.NewID(), Name: "Model", LocalizedName: "Model", SortOrder: 0},
		{ID: s.ids.NewID(), Name: "MC", LocalizedName: "Pembawa Acara", SortOrder: 1},
		{ID: s.ids.NewID(), Name: "Dancer", LocalizedName: "Penari", SortOrder: 2},
		{ID: s.ids.NewID(), Name: "Singer", LocalizedName: "Penyanyi", SortOrder: 3},
	}
}
