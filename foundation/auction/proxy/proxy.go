// Package proxy provides the stable routing layer in front of the auction
// logic. The router owns the pointer to the currently installed logic
// implementation and the admin identity allowed to replace it; persistent
// state lives outside any logic version, so upgrades change which code
// executes and never what the storage means.
package proxy

import (
	"sync"
	"time"

	"github.com/ardanlabs/auction/foundation/auction/database"
)

// Logic interface represents the behavior required to be implemented by any
// generation of the auction logic installed behind the router. Successive
// versions must be storage-compatible supersets of prior versions.
type Logic interface {
	CreateAuction(caller database.AccountID, asset database.AssetRef, startPrice uint64, duration time.Duration) (database.Auction, error)
	PlaceBid(auctionID uint64, caller database.AccountID, value uint64) (database.Auction, error)
	FinalizeAuction(auctionID uint64, caller database.AccountID) (database.Auction, error)
	WithdrawRefund(auctionID uint64, caller database.AccountID) (uint64, error)
	QueryAuction(auctionID uint64) (database.Auction, error)
	QueryAuctionCount() uint64
	QueryAuctions() map[uint64]database.Auction
	QueryRefund(auctionID uint64, bidder database.AccountID) uint64
	Version() string
}

// InitFunc runs one-time initialization against the unchanged storage when
// new logic is installed. A failure aborts the entire upgrade.
type InitFunc func() error

// Router forwards every auction operation to the currently installed logic
// implementation and exposes the admin-gated upgrade surface.
type Router struct {
	mu    sync.RWMutex
	admin database.AccountID
	logic Logic
}

// New constructs a router with the specified admin identity and the first
// logic implementation installed.
func New(admin database.AccountID, logic Logic) *Router {
	return &Router{
		admin: admin,
		logic: logic,
	}
}

// Admin returns the identity permitted to perform upgrades.
func (r *Router) Admin() database.AccountID {
	return r.admin
}

// Upgrade atomically swaps the active logic implementation. Only the admin
// can upgrade. When an init function is provided it runs against the
// unchanged storage before the swap; if it fails, nothing is swapped.
func (r *Router) Upgrade(caller database.AccountID, newLogic Logic, init InitFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.admin {
		return database.NewAuthorizationError("Only admin can upgrade the implementation")
	}

	if init != nil {
		if err := init(); err != nil {
			return err
		}
	}

	r.logic = newLogic
	return nil
}

// GetVersion returns the semantic version reported by the active logic.
func (r *Router) GetVersion() string {
	return r.current().Version()
}

// =============================================================================
// Call forwarding. Every invocation not directed at the router's own admin
// surface is delegated to the current implementation.

// CreateAuction forwards to the active logic.
func (r *Router) CreateAuction(caller database.AccountID, asset database.AssetRef, startPrice uint64, duration time.Duration) (database.Auction, error) {
	return r.current().CreateAuction(caller, asset, startPrice, duration)
}

// PlaceBid forwards to the active logic.
func (r *Router) PlaceBid(auctionID uint64, caller database.AccountID, value uint64) (database.Auction, error) {
	return r.current().PlaceBid(auctionID, caller, value)
}

// FinalizeAuction forwards to the active logic.
func (r *Router) FinalizeAuction(auctionID uint64, caller database.AccountID) (database.Auction, error) {
	return r.current().FinalizeAuction(auctionID, caller)
}

// WithdrawRefund forwards to the active logic.
func (r *Router) WithdrawRefund(auctionID uint64, caller database.AccountID) (uint64, error) {
	return r.current().WithdrawRefund(auctionID, caller)
}

// QueryAuction forwards to the active logic.
func (r *Router) QueryAuction(auctionID uint64) (database.Auction, error) {
	return r.current().QueryAuction(auctionID)
}

// QueryAuctionCount forwards to the active logic.
func (r *Router) QueryAuctionCount() uint64 {
	return r.current().QueryAuctionCount()
}

// QueryAuctions forwards to the active logic.
func (r *Router) QueryAuctions() map[uint64]database.Auction {
	return r.current().QueryAuctions()
}

// QueryRefund forwards to the active logic.
func (r *Router) QueryRefund(auctionID uint64, bidder database.AccountID) uint64 {
	return r.current().QueryRefund(auctionID, bidder)
}

// current returns the active logic under the read lock so forwarding never
// observes a half-finished upgrade.
func (r *Router) current() Logic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.logic
}
