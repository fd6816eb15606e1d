package engine

import "github.com/ardanlabs/auction/foundation/auction/database"

// QueryAuction returns a copy of the auction with the specified id.
func (e *Engine) QueryAuction(auctionID uint64) (database.Auction, error) {
	auction, exists := e.db.GetAuction(auctionID)
	if !exists {
		return database.Auction{}, database.NewValidationError("Auction does not exist")
	}

	return auction, nil
}

// QueryAuctionCount returns the number of auctions ever created.
func (e *Engine) QueryAuctionCount() uint64 {
	return e.db.AuctionCount()
}

// QueryAuctions returns a copy of the full auction table.
func (e *Engine) QueryAuctions() map[uint64]database.Auction {
	return e.db.CopyAuctions()
}

// QueryRefund returns the bidder's refundable balance for the auction.
func (e *Engine) QueryRefund(auctionID uint64, bidder database.AccountID) uint64 {
	return e.ledger.Balance(auctionID, bidder)
}
