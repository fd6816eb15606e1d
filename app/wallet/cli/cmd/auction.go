package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type auction struct {
	ID                uint64 `json:"id"`
	Seller            string `json:"seller"`
	SellerName        string `json:"seller_name"`
	AssetContract     string `json:"asset_contract"`
	AssetID           uint64 `json:"asset_id"`
	StartPrice        uint64 `json:"start_price"`
	HighestBid        uint64 `json:"highest_bid"`
	HighestBidder     string `json:"highest_bidder"`
	HighestBidderName string `json:"highest_bidder_name"`
	EndTime           uint64 `json:"end_time"`
	Active            bool   `json:"active"`
}

var auctionCmd = &cobra.Command{
	Use:   "auction",
	Short: "Print the auction with the specified id",
	Run:   auctionRun,
}

func init() {
	rootCmd.AddCommand(auctionCmd)
	auctionCmd.Flags().Uint64VarP(&auctionID, "id", "i", 0, "Id of the auction.")
}

func auctionRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/auctions/%d", url, auctionID))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var a auction
	if err := decoder.Decode(&a); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("id:      %d\n", a.ID)
	fmt.Printf("seller:  %s (%s)\n", a.SellerName, a.Seller)
	fmt.Printf("asset:   %s #%d\n", a.AssetContract, a.AssetID)
	fmt.Printf("start:   %d wei\n", a.StartPrice)
	fmt.Printf("highest: %d wei", a.HighestBid)
	if a.HighestBidder != "" {
		fmt.Printf(" by %s (%s)", a.HighestBidderName, a.HighestBidder)
	}
	fmt.Print("\n")
	fmt.Printf("ends:    %d\n", a.EndTime)
	fmt.Printf("active:  %v\n", a.Active)
}
