// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/auction/app/services/auction/handlers/v1/private"
	"github.com/ardanlabs/auction/app/services/auction/handlers/v1/public"
	"github.com/ardanlabs/auction/foundation/auction/engine"
	"github.com/ardanlabs/auction/foundation/auction/proxy"
	"github.com/ardanlabs/auction/foundation/auction/registry/memory"
	"github.com/ardanlabs/auction/foundation/events"
	"github.com/ardanlabs/auction/foundation/nameservice"
	"github.com/ardanlabs/auction/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log      *zap.SugaredLogger
	Router   *proxy.Router
	Engine   *engine.Engine
	Registry *memory.Registry
	NS       *nameservice.NameService
	Evts     *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:    cfg.Log,
		Router: cfg.Router,
		Engine: cfg.Engine,
		NS:     cfg.NS,
		Evts:   cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)
	app.Handle(http.MethodGet, version, "/genesis/list", pbl.Genesis)
	app.Handle(http.MethodGet, version, "/version", pbl.Version)
	app.Handle(http.MethodGet, version, "/auctions/list", pbl.Auctions)
	app.Handle(http.MethodGet, version, "/auctions/count", pbl.AuctionCount)
	app.Handle(http.MethodGet, version, "/auctions/:id", pbl.Auction)
	app.Handle(http.MethodGet, version, "/refunds/:id/:account", pbl.Refund)
	app.Handle(http.MethodPost, version, "/tx/submit", pbl.SubmitTransaction)
}

// PrivateRoutes binds all the version 1 private routes.
func PrivateRoutes(app *web.App, cfg Config) {
	prv := private.Handlers{
		Log:      cfg.Log,
		Router:   cfg.Router,
		Engine:   cfg.Engine,
		Registry: cfg.Registry,
	}

	app.Handle(http.MethodGet, version, "/node/status", prv.Status)
	app.Handle(http.MethodPost, version, "/node/upgrade", prv.Upgrade)
	app.Handle(http.MethodPost, version, "/node/registry/mint", prv.RegistryMint)
	app.Handle(http.MethodPost, version, "/node/registry/approve", prv.RegistryApprove)
}
