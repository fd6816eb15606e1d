// Package registry defines the asset ownership capability the auction
// engine consumes. The registry itself is an external collaborator; only
// the calling contract lives here.
package registry

import "github.com/ardanlabs/auction/foundation/auction/database"

// Registry interface represents the behavior required to be implemented by
// any external system that owns assets and authorizes their transfer. Calls
// into a registry are the engine's only suspension points and may reenter
// the system, so callers must commit their own state first where ordering
// matters.
type Registry interface {
	OwnerOf(asset database.AssetRef) (database.AccountID, error)
	IsApprovedForTransfer(owner database.AccountID, operator database.AccountID, asset database.AssetRef) (bool, error)
	TransferFrom(from database.AccountID, to database.AccountID, asset database.AssetRef) error
}
