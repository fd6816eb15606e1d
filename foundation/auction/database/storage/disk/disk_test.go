package disk_test

import (
	"testing"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/auction/database/storage/disk"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_DiskJournal(t *testing.T) {
	t.Log("Given the need to persist journal records on disk.")
	{
		t.Logf("\tTest 0:\tWhen writing and iterating records.")
		{
			strg, err := disk.New(t.TempDir())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to open storage: %v", failed, err)
			}
			defer strg.Close()

			records := []database.RecordData{
				{
					Number:     1,
					Type:       database.RecordAuctionCreated,
					AuctionID:  1,
					Account:    "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32",
					Asset:      database.AssetRef{Contract: "0x23d2d2f2a0cbfb260492d42604728cdf8fd63b7d", TokenID: 1},
					StartPrice: 100,
					EndTime:    1767312000,
					TimeStamp:  1767225600,
				},
				{
					Number:    2,
					Type:      database.RecordBidPlaced,
					AuctionID: 1,
					Account:   "0x8e4c64afaeb4e6210a65eb7a54e51d90d20112a4",
					Value:     150,
					TimeStamp: 1767225700,
				},
			}

			for _, record := range records {
				if err := strg.Write(record); err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to write record %d: %v", failed, record.Number, err)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould be able to write the records.", success)

			record, err := strg.GetRecord(2)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to read record 2 back: %v", failed, err)
			}
			if record != records[1] {
				t.Errorf("\t%s\tTest 0:\tShould read back what was written: got %+v", failed, record)
			} else {
				t.Logf("\t%s\tTest 0:\tShould read back what was written.", success)
			}

			var count int
			iter := strg.ForEach()
			for record, err := iter.Next(); !iter.Done(); record, err = iter.Next() {
				if err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to iterate the journal: %v", failed, err)
				}
				if record.Number != uint64(count+1) {
					t.Errorf("\t%s\tTest 0:\tShould iterate in record order: got %d", failed, record.Number)
				}
				count++
			}
			if count != len(records) {
				t.Errorf("\t%s\tTest 0:\tShould iterate %d records: got %d", failed, len(records), count)
			} else {
				t.Logf("\t%s\tTest 0:\tShould iterate %d records.", success, len(records))
			}

			if err := strg.Reset(); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to reset the journal: %v", failed, err)
			}

			if _, err := strg.GetRecord(1); err == nil {
				t.Errorf("\t%s\tTest 0:\tShould find no records after a reset.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould find no records after a reset.", success)
			}
		}
	}
}

func Test_RewriteRecord(t *testing.T) {
	t.Log("Given the need to rewrite a record file after a restart.")
	{
		t.Logf("\tTest 0:\tWhen a shorter record replaces a longer one.")
		{
			strg, err := disk.New(t.TempDir())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to open storage: %v", failed, err)
			}
			defer strg.Close()

			long := database.RecordData{
				Number:     1,
				Type:       database.RecordAuctionCreated,
				AuctionID:  1,
				Account:    "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32",
				Asset:      database.AssetRef{Contract: "0x23d2d2f2a0cbfb260492d42604728cdf8fd63b7d", TokenID: 1},
				StartPrice: 10_000_000_000_000_000,
				EndTime:    1767312000,
				TimeStamp:  1767225600,
			}
			if err := strg.Write(long); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to write the long record: %v", failed, err)
			}

			short := database.RecordData{
				Number:    1,
				Type:      database.RecordBidPlaced,
				AuctionID: 1,
				Value:     150,
			}
			if err := strg.Write(short); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to rewrite the record: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to rewrite the record.", success)

			record, err := strg.GetRecord(1)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to read the record back: %v", failed, err)
			}
			if record != short {
				t.Errorf("\t%s\tTest 0:\tShould read back exactly the rewritten record: got %+v", failed, record)
			} else {
				t.Logf("\t%s\tTest 0:\tShould read back exactly the rewritten record.", success)
			}

			var count int
			iter := strg.ForEach()
			for _, err := iter.Next(); !iter.Done(); _, err = iter.Next() {
				if err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to iterate the journal: %v", failed, err)
				}
				count++
			}
			if count != 1 {
				t.Errorf("\t%s\tTest 0:\tShould iterate one record: got %d", failed, count)
			} else {
				t.Logf("\t%s\tTest 0:\tShould iterate one record.", success)
			}
		}
	}
}
