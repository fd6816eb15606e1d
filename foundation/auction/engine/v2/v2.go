// Package v2 provides the second generation of the auction logic. The
// business rules are a storage-compatible superset of the first generation:
// the engine operates over the same journal, auction table and escrow
// ledger, so installing it behind the router preserves every id and balance.
package v2

import "github.com/ardanlabs/auction/foundation/auction/engine"

// Version is the semantic version of this logic generation.
const Version = "2.0.0"

// Engine wraps the first generation logic. Operations are inherited
// unchanged in this release; only the reported version differs.
type Engine struct {
	*engine.Engine
}

// New constructs the second generation logic over the running engine's
// storage.
func New(prior *engine.Engine) *Engine {
	return &Engine{Engine: prior}
}

// Version returns the semantic version of this logic generation.
func (e *Engine) Version() string {
	return Version
}
