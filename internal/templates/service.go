// Package templates implements the file-template subsystem: storage of
// binary invoice/quotation templates in the key-value substrate and
// timestamped snapshot/restore of that collection to backup files on disk.
package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"talentbase/internal/common"
	"talentbase/internal/kvstore"
	"talentbase/internal/logging"
	"talentbase/internal/models"
	"talentbase/internal/timex"

	"github.com/google/uuid"
)

// keyTemplates is the only entity-collection key this subsystem owns.
const keyTemplates = "templates:files"

// Service owns the template collection and its backup files.
type Service struct {
	kv        kvstore.Store
	backupDir string
	clock     timex.Clock
	log       logging.Logger

	mu sync.Mutex
}

// NewService constructs a Service. backupDir is created lazily on the first
// backup. Passing nil for clock or log selects the real clock and a no-op
// logger.
func NewService(kv kvstore.Store, backupDir string, clock timex.Clock, log logging.Logger) *Service {
	if clock == nil {
		clock = timex.RealClock{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		kv:        kv,
		backupDir: backupDir,
		clock:     clock,
		log:       log.With("component", "templates"),
	}
}

// SaveTemplate appends a new template record. The record id is
// "{type}_{unixMillis}"; if a record with that id already exists (two saves
// within one millisecond) a short random suffix is appended so the id stays
// unique.
func (s *Service) SaveTemplate(ctx context.Context, typ models.TemplateType, fileName, content, mimeType string) (*models.TemplateData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	id := fmt.Sprintf("%s_%d", typ, now.UnixMilli())
	for _, existing := range items {
		if existing.ID == id {
			id = fmt.Sprintf("%s_%s", id, uuid.NewString()[:8])
			break
		}
	}

	record := models.TemplateData{
		ID:        id,
		Type:      typ,
		Name:      displayName(fileName),
		Content:   content,
		MimeType:  mimeType,
		FileName:  fileName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.save(ctx, append(items, record)); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "template saved", "id", record.ID, "type", typ)
	return &record, nil
}

// TemplatesByType returns all templates of the given type, in insertion order.
func (s *Service) TemplatesByType(ctx context.Context, typ models.TemplateType) ([]models.TemplateData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.TemplateData, 0, len(items))
	for _, item := range items {
		if item.Type == typ {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// DeleteTemplate removes the template if present, reporting whether it was
// there.
func (s *Service) DeleteTemplate(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			if err := s.save(ctx, items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) load(ctx context.Context) ([]models.TemplateData, error) {
	raw, err := s.kv.Get(ctx, keyTemplates)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.TemplateData{}, nil
	}

	var items []models.TemplateData
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptState, keyTemplates, err)
	}
	if items == nil {
		items = []models.TemplateData{}
	}
	return items, nil
}

func (s *Service) save(ctx context.Context, items []models.TemplateData) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode templates: %w", err)
	}
	return s.kv.Set(ctx, keyTemplates, raw)
}

func displayName(fileName string) string {
	if i := strings.LastIndex(fileName, "."); i > 0 {
		return fileName[:i]
	}
	return fileName
}
