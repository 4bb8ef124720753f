// Package common defines shared constants and sentinel errors used across
// the talentbase data layer. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrCorruptState = errors.New("corrupt persisted state")

	// Backup / import errors.
	ErrInvalidBackupFormat = errors.New("invalid backup format")

	// Sync errors.
	ErrSyncInProgress    = errors.New("sync already in progress")
	ErrRemoteUnavailable = errors.New("remote unavailable")
)
