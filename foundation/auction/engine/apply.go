package engine

import (
	"fmt"
	"time"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/auction/escrow"
)

// applyRecord performs the state mutation one journal record describes. The
// live operation paths and the startup replay both run every mutation
// through this function, so a rebuilt database always matches the state the
// records were written against. Records are journaled only after all
// preconditions passed, which is why the mutations here cannot fail on
// anything but a broken journal.
func applyRecord(db *database.Database, ledger *escrow.Ledger, record database.RecordData) error {
	switch record.Type {
	case database.RecordAuctionCreated:
		db.UpsertAuction(database.Auction{
			ID:         record.AuctionID,
			Seller:     record.Account,
			Asset:      record.Asset,
			StartPrice: record.StartPrice,
			EndTime:    time.Unix(int64(record.EndTime), 0).UTC(),
			Active:     true,
		})

	case database.RecordBidPlaced:
		auction, exists := db.GetAuction(record.AuctionID)
		if !exists {
			return fmt.Errorf("bid record for unknown auction %d", record.AuctionID)
		}

		// The ousted bidder's deposit becomes refundable the moment a
		// higher bid replaces it.
		if auction.HasBids() {
			ledger.Credit(auction.ID, auction.HighestBidder, auction.HighestBid)
		}

		auction.HighestBid = record.Value
		auction.HighestBidder = record.Account
		db.UpsertAuction(auction)

	case database.RecordAuctionFinalized:
		auction, exists := db.GetAuction(record.AuctionID)
		if !exists {
			return fmt.Errorf("finalize record for unknown auction %d", record.AuctionID)
		}

		auction.Active = false
		db.UpsertAuction(auction)

	case database.RecordRefundWithdrawn:
		ledger.Withdraw(record.AuctionID, record.Account)

	default:
		return fmt.Errorf("unknown record type %q", record.Type)
	}

	return nil
}
