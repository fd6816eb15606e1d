package cmd

import (
	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/spf13/cobra"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw your refundable balance from an ended auction",
	Run:   withdrawRun,
}

func init() {
	rootCmd.AddCommand(withdrawCmd)
	withdrawCmd.Flags().Uint64VarP(&auctionID, "id", "i", 0, "Id of the auction.")
}

func withdrawRun(cmd *cobra.Command, args []string) {
	tx := database.AuctionTx{
		Op:        database.OpWithdraw,
		AuctionID: auctionID,
	}

	submitTx("/v1/tx/submit", tx)
}
