package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/rizzorrisk/rizz/pkg/auth"
	"github.com/rizzorrisk/rizz/pkg/handlers"
	"github.com/rizzorrisk/rizz/pkg/middleware"
	"github.com/rizzorrisk/rizz/pkg/routes"
	"github.com/rizzorrisk/rizz/pkg/storage"
)

// attachmentHandler streams stored screenshots back to their owner.
type attachmentHandler struct {
	store  storage.System
	logger *slog.Logger
}

func newAttachmentHandler(store storage.System, logger *slog.Logger) *attachmentHandler {
	return &attachmentHandler{
		store:  store,
		logger: logger.With("handler", "attachments"),
	}
}

func (h *attachmentHandler) routes() routes.Group {
	return routes.Group{
		Prefix:     "/attachments",
		Middleware: []middleware.Func{auth.RequireSession(h.logger)},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{key...}", Handler: h.download},
		},
	}
}

func (h *attachmentHandler) download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	session := auth.SessionFrom(r.Context())

	// Keys of other users are reported as missing.
	if !strings.HasPrefix(key, h.store.Key(session.UserID)+"/") {
		handlers.RespondError(w, h.logger, http.StatusNotFound, storage.ErrNotFound)
		return
	}

	result, err := h.store.Download(r.Context(), key)
	if err != nil {
		handlers.RespondError(
			w, h.logger,
			storage.MapHTTPStatus(err), err,
		)
		return
	}
	defer result.Body.Close()

	w.Header().Set("Content-Type", result.ContentType)

	if result.ContentLength > 0 {
		w.Header().Set(
			"Content-Length",
			strconv.FormatInt(result.ContentLength, 10),
		)
	}
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("inline; filename=%q", path.Base(key)),
	)
	w.WriteHeader(http.StatusOK)
	io.Copy(w, result.Body)
}
