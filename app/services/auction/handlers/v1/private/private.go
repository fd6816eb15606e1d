// Package private maintains the group of handlers for node level access.
package private

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ardanlabs/auction/business/sys/validate"
	v1 "github.com/ardanlabs/auction/business/web/v1"
	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/auction/engine"
	v2 "github.com/ardanlabs/auction/foundation/auction/engine/v2"
	"github.com/ardanlabs/auction/foundation/auction/proxy"
	"github.com/ardanlabs/auction/foundation/auction/registry/memory"
	"github.com/ardanlabs/auction/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node level endpoints.
type Handlers struct {
	Log      *zap.SugaredLogger
	Router   *proxy.Router
	Engine   *engine.Engine
	Registry *memory.Registry
}

// Status returns the current state of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Version      string             `json:"version"`
		EngineID     database.AccountID `json:"engine_id"`
		Admin        database.AccountID `json:"admin"`
		AuctionCount uint64             `json:"auction_count"`
	}{
		Version:      h.Router.GetVersion(),
		EngineID:     h.Engine.EngineID(),
		Admin:        h.Router.Admin(),
		AuctionCount: h.Router.QueryAuctionCount(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Upgrade installs a new logic implementation behind the router. The
// transaction must be signed by the admin account.
func (h Handlers) Upgrade(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signedTx database.SignedUpgradeTx
	if err := web.Decode(r, &signedTx); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signedTx); err != nil {
		return err
	}

	if err := signedTx.Validate(); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	caller, err := signedTx.FromAccount()
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	h.Log.Infow("upgrade", "traceid", v.TraceID, "caller", caller, "version", signedTx.Version)

	var logic proxy.Logic
	switch signedTx.Version {
	case v2.Version:
		logic = v2.New(h.Engine)
	default:
		return v1.NewAuctionError(database.NewValidationError("Unknown implementation version"))
	}

	init := func() error {
		if logic.Version() != signedTx.Version {
			return fmt.Errorf("logic reports version %q, want %q", logic.Version(), signedTx.Version)
		}
		return nil
	}

	if err := h.Router.Upgrade(caller, logic, init); err != nil {
		return v1.NewAuctionError(err)
	}

	resp := struct {
		Version string `json:"version"`
	}{
		Version: h.Router.GetVersion(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// RegistryMint seeds the asset registry with a new asset owned by the
// account that signed the transaction.
func (h Handlers) RegistryMint(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signedTx database.SignedTx
	if err := web.Decode(r, &signedTx); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signedTx); err != nil {
		return err
	}

	if err := signedTx.Validate(); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	caller, err := signedTx.FromAccount()
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	if signedTx.Op != database.OpMint {
		return v1.NewRequestError(fmt.Errorf("operation %q is not supported on this endpoint", signedTx.Op), http.StatusBadRequest)
	}

	h.Log.Infow("registry mint", "traceid", v.TraceID, "caller", caller, "contract", signedTx.Asset.Contract, "tokenid", signedTx.Asset.TokenID)

	if err := h.Registry.Mint(caller, signedTx.Asset); err != nil {
		return v1.NewRequestError(err, http.StatusConflict)
	}

	resp := struct {
		Owner database.AccountID `json:"owner"`
		Asset database.AssetRef  `json:"asset"`
	}{
		Owner: caller,
		Asset: signedTx.Asset,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// RegistryApprove grants the engine transfer authorization for an asset
// owned by the account that signed the transaction.
func (h Handlers) RegistryApprove(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signedTx database.SignedTx
	if err := web.Decode(r, &signedTx); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signedTx); err != nil {
		return err
	}

	if err := signedTx.Validate(); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	caller, err := signedTx.FromAccount()
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	if signedTx.Op != database.OpApprove {
		return v1.NewRequestError(fmt.Errorf("operation %q is not supported on this endpoint", signedTx.Op), http.StatusBadRequest)
	}

	h.Log.Infow("registry approve", "traceid", v.TraceID, "caller", caller, "contract", signedTx.Asset.Contract, "tokenid", signedTx.Asset.TokenID)

	if err := h.Registry.Approve(caller, h.Engine.EngineID(), signedTx.Asset); err != nil {
		return v1.NewRequestError(err, http.StatusForbidden)
	}

	resp := struct {
		Operator database.AccountID `json:"operator"`
		Asset    database.AssetRef  `json:"asset"`
	}{
		Operator: h.Engine.EngineID(),
		Asset:    signedTx.Asset,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
