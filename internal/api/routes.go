package api

import (
	"net/http"

	"github.com/rizzorrisk/rizz/internal/config"
	"github.com/rizzorrisk/rizz/internal/dashboard"
	"github.com/rizzorrisk/rizz/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	attachments := newAttachmentHandler(runtime.Storage, runtime.Logger)

	docs, err := docsRoutes(cfg)
	if err != nil {
		return err
	}

	routes.Register(
		mux,
		domain.Analysis.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Swipes.Handler().Routes(),
		dashboard.NewHandler(domain.Responses, runtime.Logger, runtime.Pagination).Routes(),
		attachments.routes(),
		docs,
	)
	return nil
}
