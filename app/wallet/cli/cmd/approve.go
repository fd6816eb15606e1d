package cmd

import (
	"log"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/spf13/cobra"
)

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Grant the engine transfer authorization for an asset",
	Run:   approveRun,
}

func init() {
	rootCmd.AddCommand(approveCmd)
	approveCmd.Flags().StringVarP(&contract, "contract", "c", "", "Contract address of the asset.")
	approveCmd.Flags().Uint64VarP(&tokenID, "token", "t", 0, "Token id of the asset.")
}

func approveRun(cmd *cobra.Command, args []string) {
	contractID, err := database.ToAccountID(contract)
	if err != nil {
		log.Fatal(err)
	}

	tx := database.AuctionTx{
		Op: database.OpApprove,
		Asset: database.AssetRef{
			Contract: contractID,
			TokenID:  tokenID,
		},
	}

	submitTx("/v1/node/registry/approve", tx)
}
