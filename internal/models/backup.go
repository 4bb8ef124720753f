package models

import (
	"encoding/json"
	"fmt"

	"talentbase/internal/common"
)

// BackupData is a whole-dataset snapshot of every entity collection. It is
// the export/import payload of the entity store and the unit the sync
// coordinator pushes and pulls.
type BackupData struct {
	Talents          []Talent          `json:"talents"`
	Projects         []Project         `json:"projects"`
	Categories       []Category        `json:"categories"`
	Bookings         []Booking         `json:"bookings"`
	ConversationLogs []ConversationLog `json:"conversationLogs"`
	Settings         Settings          `json:"settings"`
}

// requiredBackupKeys are the collection keys a backup payload must carry.
// conversationLogs is tolerated missing so older backups keep restoring.
var requiredBackupKeys = []string{"talents", "projects", "categories", "bookings", "settings"}

// ParseBackup decodes a serialized backup, rejecting payloads that are not
// JSON objects or that miss a required collection key. Unknown extra fields
// are accepted.
func ParseBackup(data []byte) (*BackupData, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidBackupFormat, err)
	}

	for _, key := range requiredBackupKeys {
		if _, ok := probe[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", common.ErrInvalidBackupFormat, key)
		}
	}

	backup := &BackupData{Settings: DefaultSettings()}
	if err := json.Unmarshal(data, backup); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidBackupFormat, err)
	}
	return backup, nil
}
