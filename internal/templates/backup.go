package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"talentbase/internal/common"
	"talentbase/internal/models"
)

// backupNamePattern is the naming contract for backup files. The embedded
// timestamp is a fixed-width millisecond epoch, so descending name order is
// descending timestamp order.
var backupNamePattern = regexp.MustCompile(`^templates_backup_(\d+)\.json$`)

// CreateBackup snapshots the full template collection into a new
// templates_backup_{unixMillis}.json file and returns its path. The backup
// directory is created if missing.
func (s *Service) CreateBackup(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.backupDir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.backupDir, err)
	}

	now := s.clock.Now()
	backup := models.TemplateBackup{
		Templates:  items,
		BackupDate: now.UnixMilli(),
		Version:    models.TemplateBackupVersion,
	}
	raw, err := json.Marshal(backup)
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}

	path := filepath.Join(s.backupDir, fmt.Sprintf("templates_backup_%d.json", now.UnixMilli()))
	if err := writeFileAtomic(path, raw); err != nil {
		return "", err
	}

	s.log.Info(ctx, "template backup created", "path", path, "templates", len(items))
	return path, nil
}

// BackupList returns the backup file names present on disk, filtered to the
// expected naming pattern and sorted descending (newest first). Files that
// do not match the pattern are skipped, never an error.
func (s *Service) BackupList() ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read backup dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if backupNamePattern.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// RestoreBackup reads the named backup file and replaces the entire live
// template collection with its contents. Nothing is overwritten unless the
// file parses: replacement is all-or-nothing.
func (s *Service) RestoreBackup(ctx context.Context, fileName string) error {
	if !backupNamePattern.MatchString(fileName) {
		return fmt.Errorf("%w: %s", common.ErrInvalidBackupFormat, fileName)
	}

	raw, err := os.ReadFile(filepath.Join(s.backupDir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", common.ErrNotFound, fileName)
		}
		return fmt.Errorf("failed to read backup: %w", err)
	}

	var backup models.TemplateBackup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidBackupFormat, err)
	}
	if backup.Templates == nil {
		backup.Templates = []models.TemplateData{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, backup.Templates); err != nil {
		return err
	}
	s.log.Info(ctx, "templates restored", "file", fileName, "templates", len(backup.Templates))
	return nil
}

// DeleteBackup removes the named backup file if present.
func (s *Service) DeleteBackup(fileName string) error {
	if !backupNamePattern.MatchString(fileName) {
		return fmt.Errorf("%w: %s", common.ErrNotFound, fileName)
	}
	if err := os.Remove(filepath.Join(s.backupDir, fileName)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", common.ErrNotFound, fileName)
		}
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// FormatBackupDate renders the timestamp embedded in a backup file name for
// display. A name that does not match the pattern is returned unchanged.
func FormatBackupDate(fileName string) string {
	m := backupNamePattern.FindStringSubmatch(fileName)
	if m == nil {
		return fileName
	}

	var millis int64
	if _, err := fmt.Sscanf(m[1], "%d", &millis); err != nil {
		return fileName
	}
	return time.UnixMilli(millis).Format("02 Jan 2006 15:04")
}

// writeFileAtomic writes data via a temp file and rename so readers never
// observe a partially written backup.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
