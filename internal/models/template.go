package models

import "time"

// TemplateType classifies a stored file template.
type TemplateType string

const (
	TemplateTypeInvoice   TemplateType = "invoice"
	TemplateTypeQuotation TemplateType = "quotation"
)

// TemplateData is a binary document template (invoice/quotation) stored
// independently of Settings. Content is the file body encoded as text.
type TemplateData struct {
	ID        string       `json:"id"`
	Type      TemplateType `json:"type"`
	Name      string       `json:"name"`
	Content   string       `json:"content"`
	MimeType  string       `json:"mimeType"`
	FileName  string       `json:"fileName"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// TemplateBackupVersion is the fixed format version written into every
// template backup file.
const TemplateBackupVersion = "1.0"

// TemplateBackup is a point-in-time snapshot of the template collection as
// written to templates_backup_{unixMillis}.json. Consumers must tolerate
// unknown extra fields.
type TemplateBackup struct {
	Templates  []TemplateData `json:"templates"`
	BackupDate int64          `json:"backupDate"`
	Version    string         `json:"version"`
}
