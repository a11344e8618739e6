// Package ledgergrp maintains the group of handlers for access to the chain.
package ledgergrp

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ardanlabs/ledger/business/core/chain"
	"github.com/ardanlabs/ledger/business/sys/validate"
	v1 "github.com/ardanlabs/ledger/business/web/v1"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	Core *chain.Core
	WS   websocket.Upgrader
	Evts *events.Events
}

// AddBlock mines a new block for the specified transaction and appends it to
// the chain. The request blocks until the proof-of-work search completes.
func (h Handlers) AddBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var nb newBlock
	if err := web.Decode(r, &nb); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validate.Check(nb); err != nil {
		return err
	}

	h.Log.Infow("add block", "traceid", v.TraceID, "sender", nb.Sender, "receiver", nb.Receiver, "amount", nb.Amount, "creator", nb.CreatorID)

	blk, err := h.Core.AddBlock(nb.Sender, nb.Receiver, nb.Amount, nb.CreatorID)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, toBlock(len(h.Core.RetrieveBlocks())-1, blk), http.StatusCreated)
}

// Blocks returns the full chain, genesis first, with each block's live hash.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chainBlocks := h.Core.RetrieveBlocks()

	blocks := make([]block, len(chainBlocks))
	for i, blk := range chainBlocks {
		blocks[i] = toBlock(i, blk)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// BlockByNumber returns the single block at the specified position in the
// chain, with genesis at position 0.
func (h Handlers) BlockByNumber(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	num, err := strconv.Atoi(web.Param(r, "number"))
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	blk, err := h.Core.RetrieveBlockByNumber(num)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, toBlock(num, blk), http.StatusOK)
}

// Genesis returns the genesis block.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, toBlock(0, h.Core.RetrieveGenesis()), http.StatusOK)
}

// Validate reports whether the chain's linkage is intact.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Valid bool `json:"valid"`
	}{
		Valid: h.Core.Validate(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SetDifficulty changes the proof-of-work cost for future blocks. Blocks
// already in the chain are never re-mined.
func (h Handlers) SetDifficulty(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var nd newDifficulty
	if err := web.Decode(r, &nd); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validate.Check(nd); err != nil {
		return err
	}

	h.Log.Infow("set difficulty", "traceid", v.TraceID, "difficulty", nd.Difficulty)

	if err := h.Core.SetDifficulty(nd.Difficulty); err != nil {
		return err
	}

	resp := struct {
		Difficulty int `json:"difficulty"`
	}{
		Difficulty: h.Core.RetrieveDifficulty(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Events handles a web socket to provide mining events to a client.
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
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
