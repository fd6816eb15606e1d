package memory_test

import (
	"testing"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/auction/registry/memory"
	"github.com/peterldowns/testy/check"
)

const (
	owner    database.AccountID = "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32"
	operator database.AccountID = "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"
	buyer    database.AccountID = "0x8e4c64afaeb4e6210a65eb7a54e51d90d20112a4"
)

var asset = database.AssetRef{Contract: "0x23d2d2f2a0cbfb260492d42604728cdf8fd63b7d", TokenID: 1}

func TestMintAndOwnership(t *testing.T) {
	reg := memory.New()

	check.Nil(t, reg.Mint(owner, asset))

	got, err := reg.OwnerOf(asset)
	check.Nil(t, err)
	check.Equal(t, owner, got)

	// Minting the same asset twice is rejected.
	check.Error(t, reg.Mint(buyer, asset))

	// Unknown assets have no owner.
	_, err = reg.OwnerOf(database.AssetRef{Contract: asset.Contract, TokenID: 99})
	check.Error(t, err)
}

func TestApprovalIsOwnerGated(t *testing.T) {
	reg := memory.New()
	check.Nil(t, reg.Mint(owner, asset))

	// Only the owner can grant approval.
	check.Error(t, reg.Approve(buyer, operator, asset))
	check.Nil(t, reg.Approve(owner, operator, asset))

	approved, err := reg.IsApprovedForTransfer(owner, operator, asset)
	check.Nil(t, err)
	check.True(t, approved)

	// A different operator holds no approval.
	approved, err = reg.IsApprovedForTransfer(owner, buyer, asset)
	check.Nil(t, err)
	check.False(t, approved)
}

func TestTransferRequiresApproval(t *testing.T) {
	reg := memory.New()
	check.Nil(t, reg.Mint(owner, asset))

	// No approval yet.
	check.Error(t, reg.TransferFrom(owner, buyer, asset))

	check.Nil(t, reg.Approve(owner, operator, asset))
	check.Nil(t, reg.TransferFrom(owner, buyer, asset))

	got, err := reg.OwnerOf(asset)
	check.Nil(t, err)
	check.Equal(t, buyer, got)

	// The approval is consumed by the transfer.
	check.Error(t, reg.TransferFrom(buyer, owner, asset))
}

func TestTransferRejectsWrongOwner(t *testing.T) {
	reg := memory.New()
	check.Nil(t, reg.Mint(owner, asset))
	check.Nil(t, reg.Approve(owner, operator, asset))

	check.Error(t, reg.TransferFrom(buyer, operator, asset))

	// Ownership is untouched by the failed transfer.
	got, err := reg.OwnerOf(asset)
	check.Nil(t, err)
	check.Equal(t, owner, got)
}
