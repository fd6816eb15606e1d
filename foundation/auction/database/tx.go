package database

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ardanlabs/auction/foundation/auction/signature"
)

// OpType identifies which auction operation a transaction requests.
type OpType string

// Set of operations a participant can sign and submit.
const (
	OpCreate   OpType = "create"
	OpBid      OpType = "bid"
	OpFinalize OpType = "finalize"
	OpWithdraw OpType = "withdraw"
	OpMint     OpType = "mint"    // Registry seeding, accepted on the private surface only.
	OpApprove  OpType = "approve" // Grants the engine transfer authorization for an asset.
)

// AuctionTx is the transactional data submitted by a participant. The caller
// identity is not a field; it is recovered from the signature.
type AuctionTx struct {
	Op         OpType   `json:"op" validate:"required"`
	AuctionID  uint64   `json:"auction_id"`
	Asset      AssetRef `json:"asset"`
	StartPrice uint64   `json:"start_price"` // Minimum first bid in wei.
	Duration   uint64   `json:"duration"`    // Seconds the auction accepts bids.
	Value      uint64   `json:"value"`       // Bid deposit in wei.
}

// Sign uses the specified private key to sign the transaction.
func (tx AuctionTx) Sign(privateKey *ecdsa.PrivateKey) (SignedTx, error) {

	// Sign the transaction with the private key to produce a signature.
	v, r, s, err := signature.Sign(tx, privateKey)
	if err != nil {
		return SignedTx{}, err
	}

	return SignedTx{
		AuctionTx: tx,
		V:         v,
		R:         r,
		S:         s,
	}, nil
}

// =============================================================================

// SignedTx is a signed version of the auction transaction.
type SignedTx struct {
	AuctionTx
	V *big.Int `json:"v" validate:"required"` // Recovery identifier.
	R *big.Int `json:"r" validate:"required"` // First coordinate of the ECDSA signature.
	S *big.Int `json:"s" validate:"required"` // Second coordinate of the ECDSA signature.
}

// Validate verifies the transaction carries a well formed signature.
func (tx SignedTx) Validate() error {
	return signature.VerifySignature(tx.V, tx.R, tx.S)
}

// FromAccount extracts the account that signed the transaction.
func (tx SignedTx) FromAccount() (AccountID, error) {
	address, err := signature.FromAddress(tx.AuctionTx, tx.V, tx.R, tx.S)
	if err != nil {
		return "", err
	}

	return AccountID(address), nil
}

// String implements the fmt.Stringer interface for logging.
func (tx SignedTx) String() string {
	account, err := tx.FromAccount()
	if err != nil {
		return fmt.Sprintf("unknown:%s", tx.Op)
	}

	return fmt.Sprintf("%s:%s", account, tx.Op)
}

// =============================================================================

// UpgradeTx is the transactional data the admin signs to replace the
// active logic implementation behind the router.
type UpgradeTx struct {
	Version string `json:"version" validate:"required"` // Semantic version of the logic to install.
}

// Sign uses the specified private key to sign the upgrade transaction.
func (tx UpgradeTx) Sign(privateKey *ecdsa.PrivateKey) (SignedUpgradeTx, error) {
	v, r, s, err := signature.Sign(tx, privateKey)
	if err != nil {
		return SignedUpgradeTx{}, err
	}

	return SignedUpgradeTx{
		UpgradeTx: tx,
		V:         v,
		R:         r,
		S:         s,
	}, nil
}

// SignedUpgradeTx is a signed version of the upgrade transaction.
type SignedUpgradeTx struct {
	UpgradeTx
	V *big.Int `json:"v" validate:"required"`
	R *big.Int `json:"r" validate:"required"`
	S *big.Int `json:"s" validate:"required"`
}

// Validate verifies the transaction carries a well formed signature.
func (tx SignedUpgradeTx) Validate() error {
	return signature.VerifySignature(tx.V, tx.R, tx.S)
}

// FromAccount extracts the account that signed the transaction.
func (tx SignedUpgradeTx) FromAccount() (AccountID, error) {
	address, err := signature.FromAddress(tx.UpgradeTx, tx.V, tx.R, tx.S)
	if err != nil {
		return "", err
	}

	return AccountID(address), nil
}
