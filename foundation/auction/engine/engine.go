// Package engine is the core API for the auction system and implements all
// the business rules and processing.
package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/auction/escrow"
	"github.com/ardanlabs/auction/foundation/auction/genesis"
	"github.com/ardanlabs/auction/foundation/auction/registry"
)

// Version is the semantic version of this logic generation. Collaborators
// use it to detect the effective logic without inspecting code.
const Version = "1.0.0"

// =============================================================================

// EventHandler defines a function that is called when events occur in the
// processing of auction operations.
type EventHandler func(v string, args ...any)

// EventSender interface represents the behavior required to be implemented
// by any package providing support for streaming typed events to observers.
type EventSender interface {
	Send(name string, data any)
}

// =============================================================================

// Config represents the configuration required to start the auction engine.
type Config struct {
	EngineID  database.AccountID // Identity the engine holds transfer approvals under.
	Genesis   genesis.Genesis
	Storage   database.Serializer
	Registry  registry.Registry
	EvHandler EventHandler
	Evts      EventSender
	Now       func() time.Time // Source of current time. Defaults to time.Now.
}

// Engine manages the auction state machine and the escrow ledger. Every
// external operation runs to completion under one mutex so calls against
// the shared state never interleave.
type Engine struct {
	mu sync.Mutex

	engineID  database.AccountID
	genesis   genesis.Genesis
	db        *database.Database
	ledger    *escrow.Ledger
	registry  registry.Registry
	evHandler EventHandler
	evts      EventSender
	now       func() time.Time
}

// New constructs a new engine, rebuilding the auction table and escrow
// ledger from the journal.
func New(cfg Config) (*Engine, error) {
	if !cfg.EngineID.IsAccountID() {
		return nil, errors.New("engine account id is not properly formatted")
	}
	if cfg.Registry == nil {
		return nil, errors.New("an asset registry is required")
	}

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	db := database.New(cfg.Storage)
	ledger := escrow.New()

	// Replay the journal so the auction table and escrow balances reflect
	// every mutation committed before this process started.
	if err := db.Replay(func(record database.RecordData) error {
		return applyRecord(db, ledger, record)
	}); err != nil {
		return nil, err
	}

	engine := Engine{
		engineID:  cfg.EngineID,
		genesis:   cfg.Genesis,
		db:        db,
		ledger:    ledger,
		registry:  cfg.Registry,
		evHandler: ev,
		evts:      cfg.Evts,
		now:       now,
	}

	return &engine, nil
}

// Shutdown cleanly brings the engine down.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.db.Close()
	return nil
}

// Version returns the semantic version of this logic generation.
func (e *Engine) Version() string {
	return Version
}

// EngineID returns the identity the engine transacts under. Sellers grant
// this account transfer approval before creating an auction.
func (e *Engine) EngineID() database.AccountID {
	return e.engineID
}

// Genesis returns a copy of the genesis information.
func (e *Engine) Genesis() genesis.Genesis {
	return e.genesis
}

// =============================================================================

// send streams a typed event to any registered observers.
func (e *Engine) send(name string, data any) {
	if e.evts != nil {
		e.evts.Send(name, data)
	}
}
