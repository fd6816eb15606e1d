package cmd

import (
	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/spf13/cobra"
)

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Finalize an ended auction you are the seller of",
	Run:   finalizeRun,
}

func init() {
	rootCmd.AddCommand(finalizeCmd)
	finalizeCmd.Flags().Uint64VarP(&auctionID, "id", "i", 0, "Id of the auction.")
}

func finalizeRun(cmd *cobra.Command, args []string) {
	tx := database.AuctionTx{
		Op:        database.OpFinalize,
		AuctionID: auctionID,
	}

	submitTx("/v1/tx/submit", tx)
}
