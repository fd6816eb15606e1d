// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ardanlabs/auction/business/sys/validate"
	v1 "github.com/ardanlabs/auction/business/web/v1"
	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/auction/engine"
	"github.com/ardanlabs/auction/foundation/auction/proxy"
	"github.com/ardanlabs/auction/foundation/events"
	"github.com/ardanlabs/auction/foundation/nameservice"
	"github.com/ardanlabs/auction/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of public auction endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Router *proxy.Router
	Engine *engine.Engine
	NS     *nameservice.NameService
	WS     websocket.Upgrader
	Evts   *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case evt, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteJSON(evt); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitTransaction accepts a signed auction operation, recovers the caller
// from the signature and routes the operation through the proxy router to
// the active logic.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
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

	h.Log.Infow("submit tran", "traceid", v.TraceID, "caller", caller, "op", signedTx.Op, "auctionid", signedTx.AuctionID, "value", signedTx.Value)

	switch signedTx.Op {
	case database.OpCreate:
		auction, err := h.Router.CreateAuction(caller, signedTx.Asset, signedTx.StartPrice, time.Duration(signedTx.Duration)*time.Second)
		if err != nil {
			return v1.NewAuctionError(err)
		}
		return web.Respond(ctx, w, toAuct(auction, h.NS), http.StatusCreated)

	case database.OpBid:
		auction, err := h.Router.PlaceBid(signedTx.AuctionID, caller, signedTx.Value)
		if err != nil {
			return v1.NewAuctionError(err)
		}
		return web.Respond(ctx, w, toAuct(auction, h.NS), http.StatusOK)

	case database.OpFinalize:
		auction, err := h.Router.FinalizeAuction(signedTx.AuctionID, caller)
		if err != nil {
			return v1.NewAuctionError(err)
		}
		return web.Respond(ctx, w, toAuct(auction, h.NS), http.StatusOK)

	case database.OpWithdraw:
		amount, err := h.Router.WithdrawRefund(signedTx.AuctionID, caller)
		if err != nil {
			return v1.NewAuctionError(err)
		}
		resp := struct {
			AuctionID uint64 `json:"auction_id"`
			Amount    uint64 `json:"amount"`
		}{
			AuctionID: signedTx.AuctionID,
			Amount:    amount,
		}
		return web.Respond(ctx, w, resp, http.StatusOK)
	}

	return v1.NewRequestError(fmt.Errorf("operation %q is not supported on the public api", signedTx.Op), http.StatusBadRequest)
}

// Auction returns the auction with the specified id.
func (h Handlers) Auction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	auctionID, err := strconv.ParseUint(web.Param(r, "id"), 10, 64)
	if err != nil {
		return v1.NewRequestError(fmt.Errorf("invalid auction id format: %w", err), http.StatusBadRequest)
	}

	auction, err := h.Router.QueryAuction(auctionID)
	if err != nil {
		return v1.NewRequestError(err, http.StatusNotFound)
	}

	return web.Respond(ctx, w, toAuct(auction, h.NS), http.StatusOK)
}

// Auctions returns the full set of auctions.
func (h Handlers) Auctions(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	auctions := h.Router.QueryAuctions()

	resp := make([]auct, 0, len(auctions))
	for _, auction := range auctions {
		resp = append(resp, toAuct(auction, h.NS))
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// AuctionCount returns the number of auctions ever created.
func (h Handlers) AuctionCount(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Count uint64 `json:"count"`
	}{
		Count: h.Router.QueryAuctionCount(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Refund returns the refundable balance for the specified auction and account.
func (h Handlers) Refund(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	auctionID, err := strconv.ParseUint(web.Param(r, "id"), 10, 64)
	if err != nil {
		return v1.NewRequestError(fmt.Errorf("invalid auction id format: %w", err), http.StatusBadRequest)
	}

	accountID, err := database.ToAccountID(web.Param(r, "account"))
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	resp := struct {
		AuctionID uint64             `json:"auction_id"`
		Account   database.AccountID `json:"account"`
		Balance   uint64             `json:"balance"`
	}{
		AuctionID: auctionID,
		Account:   accountID,
		Balance:   h.Router.QueryRefund(auctionID, accountID),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Version returns the semantic version of the active logic implementation.
func (h Handlers) Version(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Version string `json:"version"`
	}{
		Version: h.Router.GetVersion(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.Engine.Genesis()

	return web.Respond(ctx, w, gen, http.StatusOK)
}
