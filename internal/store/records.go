package store

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// recordsKey is the blob-store entry holding the serialized record list.
const recordsKey = "records"

// unboundedWarnCount is where the unbounded record log starts logging a
// size warning on append. There is no cap or eviction.
const unboundedWarnCount = 10_000

// RecordStore is the append-only calculation log. Records are created
// once, never edited, and destroyed only by Clear.
type RecordStore struct {
	kv KV
}

// NewRecordStore creates a record store backed by the given KV store.
func NewRecordStore(kv KV) *RecordStore {
	return &RecordStore{kv: kv}
}

// Append reads the existing list, pushes the record and writes the
// whole list back. A corrupt or absent list is treated as empty rather
// than surfaced; the single-user, single-process store makes the
// non-atomic read-modify-write acceptable.
func (s *RecordStore) Append(r Record) error {
	records := s.loadOrEmpty()
	records = append(records, r)

	if len(records) >= unboundedWarnCount {
		log.Warn().
			Str("component", "store").
			Int("count", len(records)).
			Msg("record log is large; consider clearing history")
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize record list: %w", err)
	}

	if err := s.kv.Set(recordsKey, blob); err != nil {
		return fmt.Errorf("failed to write record list: %w", err)
	}

	return nil
}

// List returns all records most-recent-first (reverse insertion order).
// The store is best-effort: absent, unreadable or corrupt data yields an
// empty slice, with the failure logged rather than surfaced.
func (s *RecordStore) List() []Record {
	records := s.loadOrEmpty()

	out := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, upgradeLegacy(records[i]))
	}

	return out
}

// Clear deletes the entire record log in one operation. Irreversible;
// callers gate it behind explicit user confirmation.
func (s *RecordStore) Clear() error {
	if err := s.kv.Remove(recordsKey); err != nil {
		return fmt.Errorf("failed to clear record list: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count() int {
	return len(s.loadOrEmpty())
}

// loadOrEmpty reads the stored list in insertion order, mapping absent
// or corrupt data to an empty list. Corruption is logged and discarded.
func (s *RecordStore) loadOrEmpty() []Record {
	blob, err := s.kv.Get(recordsKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Warn().
				Str("component", "store").
				Err(err).
				Msg("record list unreadable, starting empty")
		}
		return nil
	}

	var records []Record
	if err := json.Unmarshal(blob, &records); err != nil {
		log.Warn().
			Str("component", "store").
			Err(err).
			Msg("record list corrupt, starting empty")
		return nil
	}

	return records
}
