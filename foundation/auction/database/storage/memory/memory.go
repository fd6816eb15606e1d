// Package memory implements the ability to read and write journal records
// to memory using a slice. Tests use this implementation.
package memory

import (
	"errors"
	"sync"

	"github.com/ardanlabs/auction/foundation/auction/database"
)

// Memory represents the serialization implementation for reading and storing
// journal records in memory using a slice. This implements the
// database.Serializer interface.
type Memory struct {
	mu      sync.RWMutex
	records []database.RecordData
}

// New constructs a Memory value for use.
func New() (*Memory, error) {
	return &Memory{}, nil
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// Write takes the specified record and stores it in memory.
func (m *Memory) Write(record database.RecordData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if int(record.Number) != len(m.records)+1 {
		return errors.New("record is out of order")
	}

	m.records = append(m.records, record)

	return nil
}

// GetRecord searches the journal to locate and return the contents of
// the specified record by number.
func (m *Memory) GetRecord(num uint64) (database.RecordData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if num == 0 || num > uint64(len(m.records)) {
		return database.RecordData{}, errors.New("record does not exist")
	}

	return m.records[num-1], nil
}

// ForEach returns an iterator to walk through all the records
// starting with record number 1.
func (m *Memory) ForEach() database.Iterator {
	return &memoryIterator{storage: m}
}

// Reset will clear out the journal in memory.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
	return nil
}

// =============================================================================

// memoryIterator represents the iteration implementation for walking
// through and reading records in memory. This implements the database
// Iterator interface.
type memoryIterator struct {
	storage *Memory // Access to the storage API.
	current uint64  // Current record number being iterated over.
	eoj     bool    // Represents the iterator is at the end of the journal.
}

// Next retrieves the next record from memory.
func (mi *memoryIterator) Next() (database.RecordData, error) {
	if mi.eoj {
		return database.RecordData{}, errors.New("end of journal")
	}

	mi.current++
	record, err := mi.storage.GetRecord(mi.current)
	if err != nil {
		mi.eoj = true
	}

	return record, err
}

// Done returns the end of journal value.
func (mi *memoryIterator) Done() bool {
	return mi.eoj
}
