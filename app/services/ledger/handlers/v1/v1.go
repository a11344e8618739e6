// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/ledger/app/services/ledger/handlers/v1/ledgergrp"
	"github.com/ardanlabs/ledger/business/core/chain"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log  *zap.SugaredLogger
	Core *chain.Core
	Evts *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	lgh := ledgergrp.Handlers{
		Log:  cfg.Log,
		Core: cfg.Core,
		Evts: cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/genesis", lgh.Genesis)
	app.Handle(http.MethodGet, version, "/blocks/list", lgh.Blocks)
	app.Handle(http.MethodGet, version, "/blocks/list/:number", lgh.BlockByNumber)
	app.Handle(http.MethodPost, version, "/blocks/add", lgh.AddBlock)
	app.Handle(http.MethodGet, version, "/chain/validate", lgh.Validate)
	app.Handle(http.MethodPut, version, "/chain/difficulty", lgh.SetDifficulty)
	app.Handle(http.MethodGet, version, "/events", lgh.Events)
}
