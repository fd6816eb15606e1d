// Package disk implements the ability to read and write journal records
// in their own files on disk, encoded with CBOR.
package disk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/fxamacker/cbor/v2"
)

// Disk represents the serialization implementation for reading and storing
// journal records in their own separate files on disk. This implements the
// database.Serializer interface.
type Disk struct {
	dbPath string
}

// New constructs a Disk value for use.
func New(dbPath string) (*Disk, error) {
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, err
	}

	return &Disk{dbPath: dbPath}, nil
}

// Close in this implementation has nothing to do since a new file is
// written to disk for each record and then immediately closed.
func (d *Disk) Close() error {
	return nil
}

// Write takes the specified record and stores it on disk in a file
// labeled with the record number.
func (d *Disk) Write(record database.RecordData) error {
	data, err := cbor.Marshal(record)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(d.getPath(record.Number), os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}

	return nil
}

// GetRecord searches the journal on disk to locate and return the
// contents of the specified record by number.
func (d *Disk) GetRecord(num uint64) (database.RecordData, error) {
	data, err := os.ReadFile(d.getPath(num))
	if err != nil {
		return database.RecordData{}, err
	}

	var record database.RecordData
	if err := cbor.Unmarshal(data, &record); err != nil {
		return database.RecordData{}, err
	}

	return record, nil
}

// ForEach returns an iterator to walk through all the records
// starting with record number 1.
func (d *Disk) ForEach() database.Iterator {
	return &diskIterator{disk: d}
}

// Reset will clear out the journal on disk.
func (d *Disk) Reset() error {
	if err := os.RemoveAll(d.dbPath); err != nil {
		return err
	}

	return os.MkdirAll(d.dbPath, 0755)
}

// getPath forms the path to the specified record.
func (d *Disk) getPath(num uint64) string {
	name := strconv.FormatUint(num, 10)
	return path.Join(d.dbPath, fmt.Sprintf("%s.cbor", name))
}

// =============================================================================

// diskIterator represents the iteration implementation for walking through
// and reading records on disk. This implements the database.Iterator
// interface.
type diskIterator struct {
	disk    *Disk  // Access to the disk storage API.
	current uint64 // Current record number being iterated over.
	eoj     bool   // Represents the iterator is at the end of the journal.
}

// Next retrieves the next record from disk.
func (di *diskIterator) Next() (database.RecordData, error) {
	if di.eoj {
		return database.RecordData{}, errors.New("end of journal")
	}

	di.current++
	record, err := di.disk.GetRecord(di.current)
	if errors.Is(err, fs.ErrNotExist) {
		di.eoj = true
	}

	return record, err
}

// Done returns the end of journal value.
func (di *diskIterator) Done() bool {
	return di.eoj
}
