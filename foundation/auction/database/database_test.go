package database_test

import (
	"testing"
	"time"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/auction/database/storage/memory"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_Journal(t *testing.T) {
	t.Log("Given the need to journal and replay auction records.")
	{
		t.Logf("\tTest 0:\tWhen writing records and rebuilding from them.")
		{
			strg, err := memory.New()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to open storage: %v", failed, err)
			}

			db := database.New(strg)

			records := []database.RecordData{
				{
					Type:       database.RecordAuctionCreated,
					AuctionID:  1,
					Account:    "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32",
					Asset:      database.AssetRef{Contract: "0x23d2d2f2a0cbfb260492d42604728cdf8fd63b7d", TokenID: 1},
					StartPrice: 100,
					EndTime:    uint64(time.Now().Add(24 * time.Hour).Unix()),
				},
				{
					Type:      database.RecordBidPlaced,
					AuctionID: 1,
					Account:   "0x8e4c64afaeb4e6210a65eb7a54e51d90d20112a4",
					Value:     150,
				},
			}

			for _, record := range records {
				if err := db.Write(record); err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to write the record: %v", failed, err)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould be able to write the records.", success)

			// Record numbers are assigned sequentially starting at 1.
			for i := range records {
				record, err := strg.GetRecord(uint64(i + 1))
				if err != nil {
					t.Fatalf("\t%s\tTest 0:\tShould be able to read record %d back: %v", failed, i+1, err)
				}
				if record.Number != uint64(i+1) {
					t.Errorf("\t%s\tTest 0:\tShould assign record number %d: got %d", failed, i+1, record.Number)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould assign sequential record numbers.", success)

			// A second database over the same storage sees every record in order.
			db2 := database.New(strg)
			var replayed []database.RecordData
			err = db2.Replay(func(record database.RecordData) error {
				replayed = append(replayed, record)
				return nil
			})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to replay the journal: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to replay the journal.", success)

			if len(replayed) != len(records) {
				t.Errorf("\t%s\tTest 0:\tShould replay %d records: got %d", failed, len(records), len(replayed))
			} else {
				t.Logf("\t%s\tTest 0:\tShould replay %d records.", success, len(records))
			}

			// New writes continue the numbering where the replay stopped.
			next := database.RecordData{
				Type:      database.RecordAuctionFinalized,
				AuctionID: 1,
			}
			if err := db2.Write(next); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to write after replay: %v", failed, err)
			}
			record, err := strg.GetRecord(3)
			if err != nil || record.Number != 3 {
				t.Errorf("\t%s\tTest 0:\tShould continue numbering at 3: got %d, %v", failed, record.Number, err)
			} else {
				t.Logf("\t%s\tTest 0:\tShould continue numbering at 3.", success)
			}
		}
	}
}

func Test_AuctionTable(t *testing.T) {
	t.Log("Given the need to manage the auction table.")
	{
		t.Logf("\tTest 0:\tWhen allocating ids and reading auctions back.")
		{
			strg, err := memory.New()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to open storage: %v", failed, err)
			}

			db := database.New(strg)

			if got := db.NextAuctionID(); got != 1 {
				t.Errorf("\t%s\tTest 0:\tShould start the id sequence at 1: got %d", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould start the id sequence at 1.", success)
			}

			db.UpsertAuction(database.Auction{ID: 1, Seller: "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32", Active: true})
			db.UpsertAuction(database.Auction{ID: 2, Seller: "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32", Active: true})

			if got := db.NextAuctionID(); got != 3 {
				t.Errorf("\t%s\tTest 0:\tShould advance the id sequence: got %d", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould advance the id sequence.", success)
			}

			if got := db.AuctionCount(); got != 2 {
				t.Errorf("\t%s\tTest 0:\tShould count every auction ever created: got %d", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould count every auction ever created.", success)
			}

			auction, exists := db.GetAuction(1)
			if !exists || auction.ID != 1 {
				t.Errorf("\t%s\tTest 0:\tShould read auction 1 back.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould read auction 1 back.", success)
			}

			if _, exists := db.GetAuction(9); exists {
				t.Errorf("\t%s\tTest 0:\tShould not find an unknown auction.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould not find an unknown auction.", success)
			}

			// Mutating the copy must not touch the table.
			cpy := db.CopyAuctions()
			cpy[1] = database.Auction{ID: 1, Active: false}
			auction, _ = db.GetAuction(1)
			if !auction.Active {
				t.Errorf("\t%s\tTest 0:\tShould keep the table detached from copies.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould keep the table detached from copies.", success)
			}
		}
	}
}

func Test_SignedTx(t *testing.T) {
	t.Log("Given the need to sign operations and recover the caller.")
	{
		t.Logf("\tTest 0:\tWhen signing a bid with a known key.")
		{
			privateKey, err := crypto.GenerateKey()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to generate a key: %v", failed, err)
			}

			tx := database.AuctionTx{
				Op:        database.OpBid,
				AuctionID: 1,
				Value:     150,
			}

			signedTx, err := tx.Sign(privateKey)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to sign the transaction: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to sign the transaction.", success)

			if err := signedTx.Validate(); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould produce a valid signature: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould produce a valid signature.", success)

			from, err := signedTx.FromAccount()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to recover the account: %v", failed, err)
			}

			want := database.PublicKeyToAccountID(privateKey.PublicKey)
			if from != want {
				t.Errorf("\t%s\tTest 0:\tShould recover the signer's account: got %s, want %s", failed, from, want)
			} else {
				t.Logf("\t%s\tTest 0:\tShould recover the signer's account.", success)
			}

			// Tampering with the payload recovers a different account.
			signedTx.Value = 999
			from, err = signedTx.FromAccount()
			if err == nil && from == want {
				t.Errorf("\t%s\tTest 0:\tShould not recover the signer from altered data.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould not recover the signer from altered data.", success)
			}
		}

		t.Logf("\tTest 1:\tWhen signing an upgrade with the admin key.")
		{
			privateKey, err := crypto.GenerateKey()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to generate a key: %v", failed, err)
			}

			tx := database.UpgradeTx{Version: "2.0.0"}

			signedTx, err := tx.Sign(privateKey)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to sign the transaction: %v", failed, err)
			}

			if err := signedTx.Validate(); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould produce a valid signature: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould produce a valid signature.", success)

			from, err := signedTx.FromAccount()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to recover the account: %v", failed, err)
			}

			want := database.PublicKeyToAccountID(privateKey.PublicKey)
			if from != want {
				t.Errorf("\t%s\tTest 1:\tShould recover the admin's account: got %s, want %s", failed, from, want)
			} else {
				t.Logf("\t%s\tTest 1:\tShould recover the admin's account.", success)
			}
		}
	}
}

func Test_AccountID(t *testing.T) {
	type table struct {
		name  string
		hex   string
		valid bool
	}

	tt := []table{
		{"standard address", "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32", true},
		{"no prefix", "F01813E4B85e178A83e29B8E7bF26BD830a25f32", true},
		{"too short", "0xF01813E4B85e178A83e29B8E7bF26BD830a25f", false},
		{"not hex", "0xZZ1813E4B85e178A83e29B8E7bF26BD830a25f32", false},
		{"empty", "", false},
	}

	t.Log("Given the need to validate account formats.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling %s.", testID, tst.name)
			{
				_, err := database.ToAccountID(tst.hex)
				if tst.valid && err != nil {
					t.Errorf("\t%s\tTest %d:\tShould accept the account: %v", failed, testID, err)
				} else if !tst.valid && err == nil {
					t.Errorf("\t%s\tTest %d:\tShould reject the account.", failed, testID)
				} else {
					t.Logf("\t%s\tTest %d:\tShould validate correctly.", success, testID)
				}
			}
		}
	}
}
