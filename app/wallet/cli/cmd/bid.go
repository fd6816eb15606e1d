package cmd

import (
	"log"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/spf13/cobra"
)

var (
	auctionID uint64
	bidValue  string
)

var bidCmd = &cobra.Command{
	Use:   "bid",
	Short: "Place a bid on an active auction",
	Run:   bidRun,
}

func init() {
	rootCmd.AddCommand(bidCmd)
	bidCmd.Flags().Uint64VarP(&auctionID, "id", "i", 0, "Id of the auction.")
	bidCmd.Flags().StringVarP(&bidValue, "value", "v", "0.01", "Bid deposit in ether.")
}

func bidRun(cmd *cobra.Command, args []string) {
	value, err := parseEther(bidValue)
	if err != nil {
		log.Fatal(err)
	}

	tx := database.AuctionTx{
		Op:        database.OpBid,
		AuctionID: auctionID,
		Value:     value,
	}

	submitTx("/v1/tx/submit", tx)
}
