package main

import (
	"net/http"

	"github.com/rizzorrisk/rizz/internal/api"
	"github.com/rizzorrisk/rizz/internal/config"
	"github.com/rizzorrisk/rizz/internal/infrastructure"
	"github.com/rizzorrisk/rizz/pkg/handlers"
	"github.com/rizzorrisk/rizz/pkg/module"
)

type Modules struct {
	API *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{API: apiModule}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

type status struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, status{Status: "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			resp := status{Status: "not ready"}
			if err := infra.Lifecycle.Err(); err != nil {
				resp.Error = err.Error()
			}
			handlers.RespondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, status{Status: "ready"})
	})

	return router
}
