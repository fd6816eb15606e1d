// Package memory implements an in-memory asset registry. Tests, the demo
// tooling and local service runs use this implementation in place of the
// external registry collaborator.
package memory

import (
	"fmt"
	"sync"

	"github.com/ardanlabs/auction/foundation/auction/database"
)

// Registry represents an in-memory implementation of the asset registry
// capability. This implements the registry.Registry interface.
type Registry struct {
	mu        sync.RWMutex
	owners    map[string]database.AccountID
	approvals map[string]database.AccountID
}

// New constructs a Registry value for use.
func New() *Registry {
	return &Registry{
		owners:    make(map[string]database.AccountID),
		approvals: make(map[string]database.AccountID),
	}
}

// Mint records the specified account as the owner of a new asset. Minting
// an asset that already exists is rejected.
func (r *Registry) Mint(owner database.AccountID, asset database.AssetRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := mapKey(asset)
	if _, exists := r.owners[key]; exists {
		return fmt.Errorf("asset %s already exists", key)
	}

	r.owners[key] = owner
	return nil
}

// Approve grants the operator authorization to transfer the asset on the
// owner's behalf. Only the current owner can grant approval.
func (r *Registry) Approve(caller database.AccountID, operator database.AccountID, asset database.AssetRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := mapKey(asset)
	owner, exists := r.owners[key]
	if !exists {
		return fmt.Errorf("asset %s does not exist", key)
	}
	if owner != caller {
		return fmt.Errorf("caller %s is not the owner of asset %s", caller, key)
	}

	r.approvals[key] = operator
	return nil
}

// OwnerOf returns the current owner of the specified asset.
func (r *Registry) OwnerOf(asset database.AssetRef) (database.AccountID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, exists := r.owners[mapKey(asset)]
	if !exists {
		return "", fmt.Errorf("asset %s does not exist", mapKey(asset))
	}

	return owner, nil
}

// IsApprovedForTransfer reports whether the operator holds transfer
// authorization for the asset from its current owner.
func (r *Registry) IsApprovedForTransfer(owner database.AccountID, operator database.AccountID, asset database.AssetRef) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := mapKey(asset)
	currentOwner, exists := r.owners[key]
	if !exists {
		return false, fmt.Errorf("asset %s does not exist", key)
	}
	if currentOwner != owner {
		return false, nil
	}

	return r.approvals[key] == operator, nil
}

// TransferFrom moves the asset from one owner to another. The transfer is
// rejected unless the from account is the current owner and an operator
// holds transfer authorization. Any approval is cleared once the asset
// changes hands.
func (r *Registry) TransferFrom(from database.AccountID, to database.AccountID, asset database.AssetRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := mapKey(asset)
	owner, exists := r.owners[key]
	if !exists {
		return fmt.Errorf("asset %s does not exist", key)
	}
	if owner != from {
		return fmt.Errorf("account %s is not the owner of asset %s", from, key)
	}
	if _, approved := r.approvals[key]; !approved {
		return fmt.Errorf("transfer of asset %s is not authorized", key)
	}

	r.owners[key] = to
	delete(r.approvals, key)

	return nil
}

// =============================================================================

// mapKey is used to generate the map key.
func mapKey(asset database.AssetRef) string {
	return fmt.Sprintf("%s:%d", asset.Contract, asset.TokenID)
}
