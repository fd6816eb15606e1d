package engine

import (
	"fmt"
	"time"

	"github.com/ardanlabs/auction/foundation/auction/database"
)

// CreateAuction opens a new auction for the specified asset. The caller must
// be the asset's current owner per the registry and must have granted the
// engine transfer authorization; the asset stays in the seller's custody
// until finalization, locked only by that approval.
func (e *Engine) CreateAuction(caller database.AccountID, asset database.AssetRef, startPrice uint64, duration time.Duration) (database.Auction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if asset.IsZero() {
		return database.Auction{}, database.NewValidationError("Invalid NFT contract address")
	}
	if startPrice == 0 {
		return database.Auction{}, database.NewValidationError("Start price must be greater than 0")
	}
	if duration <= 0 {
		return database.Auction{}, database.NewValidationError("Duration must be greater than 0")
	}

	owner, err := e.registry.OwnerOf(asset)
	if err != nil {
		return database.Auction{}, database.NewTransferError("Asset Registry lookup failed", err)
	}
	if owner != caller {
		return database.Auction{}, database.NewAuthorizationError("Caller is not the owner of the NFT")
	}

	approved, err := e.registry.IsApprovedForTransfer(caller, e.engineID, asset)
	if err != nil {
		return database.Auction{}, database.NewTransferError("Asset Registry lookup failed", err)
	}
	if !approved {
		return database.Auction{}, database.NewAuthorizationError("Contract is not approved to transfer this NFT")
	}

	now := e.now().UTC()
	auctionID := e.db.NextAuctionID()
	endTime := now.Add(duration)

	record := database.RecordData{
		Type:       database.RecordAuctionCreated,
		AuctionID:  auctionID,
		Account:    caller,
		Asset:      asset,
		StartPrice: startPrice,
		EndTime:    uint64(endTime.Unix()),
		TimeStamp:  uint64(now.Unix()),
	}
	if err := e.commit(record); err != nil {
		return database.Auction{}, err
	}

	auction, _ := e.db.GetAuction(auctionID)

	e.evHandler("engine: create: auction %d: seller %s: asset %s/%d: start price %d", auctionID, caller, asset.Contract, asset.TokenID, startPrice)
	e.send(EventAuctionCreated, AuctionCreated{
		AuctionID:     auctionID,
		Seller:        caller,
		AssetContract: asset.Contract,
		AssetID:       asset.TokenID,
		StartPrice:    startPrice,
		EndTime:       uint64(auction.EndTime.Unix()),
	})

	return auction, nil
}

// PlaceBid accepts a deposit-backed bid that strictly exceeds the current
// highest bid. The ousted bidder's deposit is credited to the escrow ledger
// where it waits to be reclaimed.
func (e *Engine) PlaceBid(auctionID uint64, caller database.AccountID, value uint64) (database.Auction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	auction, exists := e.db.GetAuction(auctionID)
	if !exists || !auction.Active {
		return database.Auction{}, database.NewStateError("Auction is not active")
	}
	if auction.Ended(e.now().UTC()) {
		return database.Auction{}, database.NewStateError("Auction has ended")
	}
	if caller == auction.Seller {
		return database.Auction{}, database.NewAuthorizationError("Seller cannot bid on own auction")
	}
	if !auction.HasBids() && value < auction.StartPrice {
		return database.Auction{}, database.NewValidationError("Bid must be at least the start price")
	}
	if value <= auction.HighestBid {
		return database.Auction{}, database.NewValidationError("Bid must exceed the current highest bid")
	}

	record := database.RecordData{
		Type:      database.RecordBidPlaced,
		AuctionID: auctionID,
		Account:   caller,
		Value:     value,
		TimeStamp: uint64(e.now().UTC().Unix()),
	}
	if err := e.commit(record); err != nil {
		return database.Auction{}, err
	}

	auction, _ = e.db.GetAuction(auctionID)

	e.evHandler("engine: bid: auction %d: bidder %s: value %d", auctionID, caller, value)
	e.send(EventBidPlaced, BidPlaced{
		AuctionID: auctionID,
		Bidder:    caller,
		Amount:    value,
	})

	return auction, nil
}

// FinalizeAuction settles an ended auction. Only the seller can finalize and
// only after the end time. When a highest bidder exists the asset moves to
// them through the registry and the bid amount is the seller's proceeds;
// with no bids the asset simply stays with the seller. The active flag
// transitions to false exactly once and never back.
func (e *Engine) FinalizeAuction(auctionID uint64, caller database.AccountID) (database.Auction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	auction, exists := e.db.GetAuction(auctionID)
	if !exists || !auction.Active {
		return database.Auction{}, database.NewStateError("Auction is not active")
	}
	if caller != auction.Seller {
		return database.Auction{}, database.NewAuthorizationError("Only seller can finalize the auction")
	}
	if !auction.Ended(e.now().UTC()) {
		return database.Auction{}, database.NewStateError("Auction has not ended yet")
	}

	// Move the asset before committing the terminal transition so a
	// registry rejection aborts the whole call with no partial mutation.
	if auction.HasBids() {
		if err := e.registry.TransferFrom(auction.Seller, auction.HighestBidder, auction.Asset); err != nil {
			return database.Auction{}, database.NewTransferError("Asset Registry transfer rejected", err)
		}
	}

	record := database.RecordData{
		Type:      database.RecordAuctionFinalized,
		AuctionID: auctionID,
		Account:   auction.HighestBidder,
		Value:     auction.HighestBid,
		TimeStamp: uint64(e.now().UTC().Unix()),
	}
	if err := e.commit(record); err != nil {
		return database.Auction{}, err
	}

	auction, _ = e.db.GetAuction(auctionID)

	e.evHandler("engine: finalize: auction %d: winner %s: amount %d", auctionID, auction.HighestBidder, auction.HighestBid)
	e.send(EventAuctionFinalized, AuctionFinalized{
		AuctionID: auctionID,
		Winner:    auction.HighestBidder,
		Amount:    auction.HighestBid,
	})

	return auction, nil
}

// WithdrawRefund reclaims the caller's refundable balance for a concluded
// auction. The ledger entry is zeroed before the amount is released to the
// caller; a repeat withdrawal finds a zero balance and pays nothing without
// emitting a duplicate event.
func (e *Engine) WithdrawRefund(auctionID uint64, caller database.AccountID) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if auction, exists := e.db.GetAuction(auctionID); exists && auction.Active {
		return 0, database.NewStateError("Auction is still active")
	}

	amount := e.ledger.Balance(auctionID, caller)
	if amount == 0 {
		e.evHandler("engine: withdraw: auction %d: account %s: nothing to refund", auctionID, caller)
		return 0, nil
	}

	record := database.RecordData{
		Type:      database.RecordRefundWithdrawn,
		AuctionID: auctionID,
		Account:   caller,
		Value:     amount,
		TimeStamp: uint64(e.now().UTC().Unix()),
	}
	if err := e.commit(record); err != nil {
		return 0, err
	}

	e.evHandler("engine: withdraw: auction %d: account %s: amount %d", auctionID, caller, amount)
	e.send(EventRefundWithdrawn, RefundWithdrawn{
		AuctionID: auctionID,
		Bidder:    caller,
		Amount:    amount,
	})

	return amount, nil
}

// =============================================================================

// commit journals the record and then applies its mutation to the in-memory
// state. Journal-then-apply keeps the write-ahead property: a record on disk
// always describes a mutation that passed every precondition.
func (e *Engine) commit(record database.RecordData) error {
	if err := e.db.Write(record); err != nil {
		return fmt.Errorf("journaling record: %w", err)
	}

	return applyRecord(e.db, e.ledger, record)
}
