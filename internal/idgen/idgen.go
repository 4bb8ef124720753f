// Package idgen produces globally unique string identifiers for new records.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator abstracts unique ID generation so tests are deterministic.
type Generator interface {
	NewID() string
}

// UUID produces random (v4) UUID strings.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Sequential produces "prefix-1", "prefix-2", and so on. For tests only.
type Sequential struct {
	Prefix string
	n      atomic.Int64
}

func (s *Sequential) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}
