package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

type refund struct {
	AuctionID uint64 `json:"auction_id"`
	Account   string `json:"account"`
	Balance   uint64 `json:"balance"`
}

var refundCmd = &cobra.Command{
	Use:   "refund",
	Short: "Print your refundable balance for an auction",
	Run:   refundRun,
}

func init() {
	rootCmd.AddCommand(refundCmd)
	refundCmd.Flags().Uint64VarP(&auctionID, "id", "i", 0, "Id of the auction.")
}

func refundRun(cmd *cobra.Command, args []string) {
	privateKey, err := crypto.LoadECDSA(getPrivateKeyPath())
	if err != nil {
		log.Fatal(err)
	}

	accountID := database.PublicKeyToAccountID(privateKey.PublicKey)
	fmt.Println("For Account:", accountID)

	resp, err := http.Get(fmt.Sprintf("%s/v1/refunds/%d/%s", url, auctionID, accountID))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var r refund
	if err := decoder.Decode(&r); err != nil {
		log.Fatal(err)
	}

	fmt.Println(r.Balance)
}
