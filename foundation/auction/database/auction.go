package database

import "time"

// AssetRef identifies one uniquely-owned asset inside an external registry.
type AssetRef struct {
	Contract AccountID `json:"contract"` // Address of the registry contract holding the asset.
	TokenID  uint64    `json:"token_id"` // Identifier of the asset inside the registry.
}

// IsZero reports whether the reference points at no registry at all.
func (ar AssetRef) IsZero() bool {
	return ar.Contract.IsZero()
}

// =============================================================================

// Auction represents a time-bounded sale of one asset. The record is created
// with bidding open and transitions to inactive exactly once when the seller
// finalizes it after the end time.
type Auction struct {
	ID            uint64
	Seller        AccountID
	Asset         AssetRef
	StartPrice    uint64 // Minimum first bid in wei.
	HighestBid    uint64 // Monotonically non-decreasing over the auction's life.
	HighestBidder AccountID
	EndTime       time.Time // Fixed at creation and never mutated.
	Active        bool
}

// HasBids reports whether any bid has been accepted for the auction.
func (a Auction) HasBids() bool {
	return !a.HighestBidder.IsZero()
}

// Ended reports whether the bidding window has closed relative to the
// supplied current time. "Ended" is a derived predicate, not a scheduled
// event.
func (a Auction) Ended(now time.Time) bool {
	return !now.Before(a.EndTime)
}
