package commands

import (
	"fmt"

	"github.com/ardanlabs/auction/foundation/auction/database/storage/disk"
)

// Records prints every record in the journal in commit order.
func Records(args []string, strg *disk.Disk) error {
	iter := strg.ForEach()
	for record, err := iter.Next(); !iter.Done(); record, err = iter.Next() {
		if err != nil {
			return err
		}

		fmt.Printf("Record: %d  Type: %s  Auction: %d  Account: %s  Value: %d  Time: %d\n",
			record.Number, record.Type, record.AuctionID, record.Account, record.Value, record.TimeStamp)
	}

	return nil
}
