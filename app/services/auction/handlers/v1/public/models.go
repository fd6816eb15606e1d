package public

import (
	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/nameservice"
)

// auct represents an auction record decorated with account names for
// the caller.
type auct struct {
	ID                uint64             `json:"id"`
	Seller            database.AccountID `json:"seller"`
	SellerName        string             `json:"seller_name"`
	AssetContract     database.AccountID `json:"asset_contract"`
	AssetID           uint64             `json:"asset_id"`
	StartPrice        uint64             `json:"start_price"`
	HighestBid        uint64             `json:"highest_bid"`
	HighestBidder     database.AccountID `json:"highest_bidder,omitempty"`
	HighestBidderName string             `json:"highest_bidder_name,omitempty"`
	EndTime           uint64             `json:"end_time"`
	Active            bool               `json:"active"`
}

// toAuct converts the database auction to an application auction.
func toAuct(auction database.Auction, ns *nameservice.NameService) auct {
	a := auct{
		ID:            auction.ID,
		Seller:        auction.Seller,
		SellerName:    ns.Lookup(auction.Seller),
		AssetContract: auction.Asset.Contract,
		AssetID:       auction.Asset.TokenID,
		StartPrice:    auction.StartPrice,
		HighestBid:    auction.HighestBid,
		EndTime:       uint64(auction.EndTime.Unix()),
		Active:        auction.Active,
	}

	if auction.HasBids() {
		a.HighestBidder = auction.HighestBidder
		a.HighestBidderName = ns.Lookup(auction.HighestBidder)
	}

	return a
}
