package ledger

import (
	"errors"

	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
)

// ErrUnknownPayee is returned when a patch targets a payee that has no
// entry in the period. Patches update existing rows only, rows are created
// when the period is opened.
var ErrUnknownPayee = errors.New("payee has no entry in this period")

// Meta identifies which billing period a ledger belongs to.
type Meta struct {
	Kind  enum.BillingKind
	Scope string
	Year  int
	Month string
}

// Store holds one billing period's entries keyed by payee ID. It owns its
// copies of the entries, so neither loading nor snapshotting aliases caller
// memory, and every mutation goes through Recalculate.
type Store struct {
	meta    Meta
	entries map[string]Entry
}

// NewStore creates an empty store for the given period.
func NewStore(meta Meta) *Store {
	return &Store{
		meta:    meta,
		entries: make(map[string]Entry),
	}
}

// Load replaces the store contents with the given entries. Remainders are
// recomputed on the way in, whatever the source claimed is discarded.
func (s *Store) Load(entries map[string]Entry) {
	s.entries = make(map[string]Entry, len(entries))
	for id, e := range entries {
		e.Recalculate()
		s.entries[id] = e
	}
}

// Meta returns the period identity.
func (s *Store) Meta() Meta {
	return s.meta
}

// Entry returns a payee's entry and whether it exists.
func (s *Store) Entry(payeeID string) (Entry, bool) {
	e, ok := s.entries[payeeID]
	return e, ok
}

// Put inserts or replaces a payee's entry.
func (s *Store) Put(payeeID string, e Entry) {
	e.Recalculate()
	s.entries[payeeID] = e
}

// PatchEntry applies a single field change to an existing entry. The target
// must already be present; remainder is refreshed after the write.
func (s *Store) PatchEntry(payeeID string, field Field, value interface{}) error {
	e, ok := s.entries[payeeID]
	if !ok {
		return ErrUnknownPayee
	}
	e.Set(field, value)
	e.Recalculate()
	s.entries[payeeID] = e
	return nil
}

// ApplyPatch merges a multi-field patch into an existing entry.
func (s *Store) ApplyPatch(payeeID string, patch Patch) error {
	e, ok := s.entries[payeeID]
	if !ok {
		return ErrUnknownPayee
	}
	for field, value := range patch.Fields {
		e.Set(field, value)
	}
	e.Recalculate()
	s.entries[payeeID] = e
	return nil
}

// Snapshot returns a copy of all entries.
func (s *Store) Snapshot() map[string]Entry {
	out := make(map[string]Entry, len(s.entries))
	for id, e := range s.entries {
		out[id] = e
	}
	return out
}

// Len returns the number of entries in the period.
func (s *Store) Len() int {
	return len(s.entries)
}

// Totals sums the period.
func (s *Store) Totals() Totals {
	return Sum(s.entries)
}
