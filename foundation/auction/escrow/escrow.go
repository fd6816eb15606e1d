// Package escrow maintains the refundable balances held on behalf of outbid
// bidders. The ledger is pure accounting: balances only grow by credit and
// only shrink by a single full withdrawal that zeroes the entry before any
// value leaves the system. That ordering is the contract of this package,
// not an implementation detail.
package escrow

import (
	"fmt"
	"sync"

	"github.com/ardanlabs/auction/foundation/auction/database"
)

// Ledger represents the balances of refundable value organized by
// auction id and bidder.
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]uint64
}

// New constructs a ledger for managing refundable balances.
func New() *Ledger {
	return &Ledger{
		balances: make(map[string]uint64),
	}
}

// Credit adds the specified amount to the bidder's refundable balance for
// the auction. The entry is created on first credit.
func (l *Ledger) Credit(auctionID uint64, bidder database.AccountID, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[mapKey(auctionID, bidder)] += amount
}

// Withdraw zeroes the bidder's balance for the auction and returns the
// amount that was held. The entry is zeroed before the amount is handed to
// the caller so state never reflects a pending outbound transfer as still
// refundable.
func (l *Ledger) Withdraw(auctionID uint64, bidder database.AccountID) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := mapKey(auctionID, bidder)
	amount := l.balances[key]
	delete(l.balances, key)

	return amount
}

// Balance returns the bidder's current refundable balance for the auction.
func (l *Ledger) Balance(auctionID uint64, bidder database.AccountID) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balances[mapKey(auctionID, bidder)]
}

// Count returns the current number of entries holding a balance.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.balances)
}

// Copy makes a copy of the current balances.
func (l *Ledger) Copy() map[string]uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balances := make(map[string]uint64, len(l.balances))
	for key, amount := range l.balances {
		balances[key] = amount
	}
	return balances
}

// =============================================================================

// mapKey is used to generate the map key.
func mapKey(auctionID uint64, bidder database.AccountID) string {
	return fmt.Sprintf("%d:%s", auctionID, bidder)
}
