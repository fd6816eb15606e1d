// Package database handles the in-memory auction table and the lower level
// support for journaling every committed mutation so state survives restarts.
package database

import (
	"fmt"
	"sync"
)

// Database manages the auction records and the append-only journal they are
// rebuilt from. The monotonic auction counter starts at 1 and ids are never
// reused; there is no deletion.
type Database struct {
	mu sync.RWMutex

	auctions map[uint64]Auction
	counter  uint64 // Last allocated auction id.
	records  uint64 // Last journal record number.

	serializer Serializer
}

// New constructs a database value over the specified journal storage. Call
// Replay to rebuild the in-memory state from the journal before use.
func New(serializer Serializer) *Database {
	return &Database{
		auctions:   make(map[uint64]Auction),
		serializer: serializer,
	}
}

// Replay walks the journal in order and hands every record to the apply
// function so the caller can rebuild the auction table and the escrow
// ledger together.
func (db *Database) Replay(apply func(record RecordData) error) error {
	iter := db.serializer.ForEach()
	for record, err := iter.Next(); !iter.Done(); record, err = iter.Next() {
		if err != nil {
			return err
		}

		if err := apply(record); err != nil {
			return fmt.Errorf("replaying record %d: %w", record.Number, err)
		}

		db.mu.Lock()
		db.records = record.Number
		db.mu.Unlock()
	}

	return nil
}

// Close closes the open journal storage.
func (db *Database) Close() {
	db.serializer.Close()
}

// Write appends a new record to the journal, assigning it the next record
// number. The record must already describe a fully validated mutation.
func (db *Database) Write(record RecordData) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	record.Number = db.records + 1
	if err := db.serializer.Write(record); err != nil {
		return err
	}
	db.records = record.Number

	return nil
}

// =============================================================================

// UpsertAuction adds or replaces an auction record and keeps the id
// counter monotonic.
func (db *Database) UpsertAuction(auction Auction) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.auctions[auction.ID] = auction
	if auction.ID > db.counter {
		db.counter = auction.ID
	}
}

// GetAuction retrieves the auction with the specified id.
func (db *Database) GetAuction(auctionID uint64) (Auction, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	auction, exists := db.auctions[auctionID]
	return auction, exists
}

// NextAuctionID returns the id the next created auction will be assigned.
func (db *Database) NextAuctionID() uint64 {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.counter + 1
}

// AuctionCount returns the number of auctions ever created. Since ids are
// allocated sequentially and never reused, this equals the last id.
func (db *Database) AuctionCount() uint64 {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.counter
}

// CopyAuctions makes a copy of the current auction table.
func (db *Database) CopyAuctions() map[uint64]Auction {
	db.mu.RLock()
	defer db.mu.RUnlock()

	auctions := make(map[uint64]Auction, len(db.auctions))
	for id, auction := range db.auctions {
		auctions[id] = auction
	}
	return auctions
}
