package cmd

import (
	"log"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/spf13/cobra"
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Seed the registry with a new asset owned by this wallet",
	Run:   mintRun,
}

func init() {
	rootCmd.AddCommand(mintCmd)
	mintCmd.Flags().StringVarP(&contract, "contract", "c", "", "Contract address of the asset.")
	mintCmd.Flags().Uint64VarP(&tokenID, "token", "t", 0, "Token id of the asset.")
}

func mintRun(cmd *cobra.Command, args []string) {
	contractID, err := database.ToAccountID(contract)
	if err != nil {
		log.Fatal(err)
	}

	tx := database.AuctionTx{
		Op: database.OpMint,
		Asset: database.AssetRef{
			Contract: contractID,
			TokenID:  tokenID,
		},
	}

	submitTx("/v1/node/registry/mint", tx)
}
