package cmd

import (
	"log"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/spf13/cobra"
)

var (
	contract string
	tokenID  uint64
	price    string
	duration uint64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an auction for an asset you own",
	Run:   createRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&contract, "contract", "c", "", "Contract address of the asset.")
	createCmd.Flags().Uint64VarP(&tokenID, "token", "t", 0, "Token id of the asset.")
	createCmd.Flags().StringVarP(&price, "price", "s", "0.01", "Start price in ether.")
	createCmd.Flags().Uint64VarP(&duration, "duration", "d", 86400, "Auction duration in seconds.")
}

func createRun(cmd *cobra.Command, args []string) {
	contractID, err := database.ToAccountID(contract)
	if err != nil {
		log.Fatal(err)
	}

	startPrice, err := parseEther(price)
	if err != nil {
		log.Fatal(err)
	}

	tx := database.AuctionTx{
		Op: database.OpCreate,
		Asset: database.AssetRef{
			Contract: contractID,
			TokenID:  tokenID,
		},
		StartPrice: startPrice,
		Duration:   duration,
	}

	submitTx("/v1/tx/submit", tx)
}
