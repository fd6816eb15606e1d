package engine

import "github.com/ardanlabs/auction/foundation/auction/database"

// Set of event names streamed to observers.
const (
	EventAuctionCreated   = "auction_created"
	EventBidPlaced        = "bid_placed"
	EventAuctionFinalized = "auction_finalized"
	EventRefundWithdrawn  = "refund_withdrawn"
)

// AuctionCreated is streamed when a new auction opens for bidding. The
// reserved slot carries 0 in the present version.
type AuctionCreated struct {
	AuctionID     uint64             `json:"auction_id"`
	Seller        database.AccountID `json:"seller"`
	AssetContract database.AccountID `json:"asset_contract"`
	AssetID       uint64             `json:"asset_id"`
	StartPrice    uint64             `json:"start_price"`
	EndTime       uint64             `json:"end_time"`
	Reserved      uint64             `json:"reserved"`
}

// BidPlaced is streamed when a strictly higher bid is accepted.
type BidPlaced struct {
	AuctionID uint64             `json:"auction_id"`
	Bidder    database.AccountID `json:"bidder"`
	Amount    uint64             `json:"amount"`
	Reserved  uint64             `json:"reserved"`
}

// AuctionFinalized is streamed when the seller settles an ended auction.
// Winner is empty when the auction closed without bids.
type AuctionFinalized struct {
	AuctionID uint64             `json:"auction_id"`
	Winner    database.AccountID `json:"winner"`
	Amount    uint64             `json:"amount"`
	Reserved  uint64             `json:"reserved"`
}

// RefundWithdrawn is streamed when an outbid bidder reclaims their deposit.
type RefundWithdrawn struct {
	AuctionID uint64             `json:"auction_id"`
	Bidder    database.AccountID `json:"bidder"`
	Amount    uint64             `json:"amount"`
}
