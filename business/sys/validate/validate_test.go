package validate_test

import (
	"testing"

	"github.com/ardanlabs/auction/business/sys/validate"
	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_CheckSignedTx(t *testing.T) {
	t.Log("Given the need to validate submitted transaction payloads.")
	{
		t.Logf("\tTest 0:\tWhen the payload carries no operation or signature.")
		{
			err := validate.Check(database.SignedTx{})
			if err == nil {
				t.Fatalf("\t%s\tTest 0:\tShould reject an empty payload.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould reject an empty payload.", success)

			if !validate.IsFieldErrors(err) {
				t.Fatalf("\t%s\tTest 0:\tShould report field errors: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould report field errors.", success)

			fields := validate.GetFieldErrors(err).Fields()
			for _, field := range []string{"op", "v", "r", "s"} {
				if _, exists := fields[field]; !exists {
					t.Errorf("\t%s\tTest 0:\tShould flag the %q field: got %v", failed, field, fields)
				} else {
					t.Logf("\t%s\tTest 0:\tShould flag the %q field.", success, field)
				}
			}
		}

		t.Logf("\tTest 1:\tWhen the payload is fully signed.")
		{
			privateKey, err := crypto.GenerateKey()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to generate a key: %v", failed, err)
			}

			tx := database.AuctionTx{
				Op:        database.OpBid,
				AuctionID: 1,
				Value:     150,
			}

			signedTx, err := tx.Sign(privateKey)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to sign the transaction: %v", failed, err)
			}

			if err := validate.Check(signedTx); err != nil {
				t.Errorf("\t%s\tTest 1:\tShould accept the payload: %v", failed, err)
			} else {
				t.Logf("\t%s\tTest 1:\tShould accept the payload.", success)
			}
		}
	}
}

func Test_CheckSignedUpgradeTx(t *testing.T) {
	t.Log("Given the need to validate submitted upgrade payloads.")
	{
		t.Logf("\tTest 0:\tWhen the payload carries no version.")
		{
			privateKey, err := crypto.GenerateKey()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to generate a key: %v", failed, err)
			}

			signedTx, err := database.UpgradeTx{}.Sign(privateKey)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to sign the transaction: %v", failed, err)
			}

			err = validate.Check(signedTx)
			if !validate.IsFieldErrors(err) {
				t.Fatalf("\t%s\tTest 0:\tShould report field errors: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould report field errors.", success)

			if _, exists := validate.GetFieldErrors(err).Fields()["version"]; !exists {
				t.Errorf("\t%s\tTest 0:\tShould flag the version field.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould flag the version field.", success)
			}
		}

		t.Logf("\tTest 1:\tWhen the payload names a version.")
		{
			privateKey, err := crypto.GenerateKey()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to generate a key: %v", failed, err)
			}

			signedTx, err := database.UpgradeTx{Version: "2.0.0"}.Sign(privateKey)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to sign the transaction: %v", failed, err)
			}

			if err := validate.Check(signedTx); err != nil {
				t.Errorf("\t%s\tTest 1:\tShould accept the payload: %v", failed, err)
			} else {
				t.Logf("\t%s\tTest 1:\tShould accept the payload.", success)
			}
		}
	}
}
