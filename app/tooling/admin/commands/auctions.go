package commands

import (
	"fmt"
	"sort"

	"github.com/ardanlabs/auction/foundation/auction/engine"
)

// Auctions prints the auction table rebuilt from the journal.
func Auctions(args []string, eng *engine.Engine) error {
	auctions := eng.QueryAuctions()

	ids := make([]uint64, 0, len(auctions))
	for id := range auctions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		auction := auctions[id]
		fmt.Printf("Auction: %d  Seller: %s  Asset: %s/%d  Start: %d  Highest: %d (%s)  Ends: %d  Active: %v\n",
			auction.ID, auction.Seller, auction.Asset.Contract, auction.Asset.TokenID,
			auction.StartPrice, auction.HighestBid, auction.HighestBidder,
			auction.EndTime.Unix(), auction.Active)
	}

	fmt.Printf("\nTotal auctions: %d\n", eng.QueryAuctionCount())
	return nil
}
