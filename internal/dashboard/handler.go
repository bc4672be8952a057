package dashboard

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/rizzorrisk/rizz/internal/responses"
	"github.com/rizzorrisk/rizz/pkg/auth"
	"github.com/rizzorrisk/rizz/pkg/handlers"
	"github.com/rizzorrisk/rizz/pkg/middleware"
	"github.com/rizzorrisk/rizz/pkg/pagination"
	"github.com/rizzorrisk/rizz/pkg/routes"
)

// Handler serves a signed-in user's dashboard.
type Handler struct {
	store      responses.System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a dashboard Handler reading from store.
func NewHandler(store responses.System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		store:      store,
		logger:     logger.With("handler", "dashboard"),
		pagination: pagination,
	}
}

// Routes returns the dashboard route group. Every route requires a session.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:     "/dashboard",
		Middleware: []middleware.Func{auth.RequireSession(h.logger)},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Summary},
			{Method: "GET", Pattern: "/responses", Handler: h.Responses},
		},
	}
}

type summaryResponse struct {
	Summary
	Recent []responses.Record `json:"recent"`
}

// recentLimit bounds the records embedded in the summary response.
const recentLimit = 5

// Summary returns the dashboard summary with the newest records.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	records, ok := h.load(w, r)
	if !ok {
		return
	}

	recent := Recent(records)
	handlers.RespondJSON(w, http.StatusOK, summaryResponse{
		Summary: Summarize(records),
		Recent:  recent[:min(recentLimit, len(recent))],
	})
}

// Responses pages the log newest first. ?search= filters on scenario text.
func (h *Handler) Responses(w http.ResponseWriter, r *http.Request) {
	records, ok := h.load(w, r)
	if !ok {
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	recent := Recent(records)
	if page.Search != nil {
		recent = Search(recent, *page.Search)
	}

	handlers.RespondJSON(w, http.StatusOK, pagination.Slice(recent, page))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) ([]responses.Record, bool) {
	session := auth.SessionFrom(r.Context())

	records, err := h.store.List(r.Context(), session.UserID)
	if err != nil {
		handlers.RespondError(w, h.logger, responses.MapHTTPStatus(err), err)
		return nil, false
	}
	return records, true
}

// Search keeps records whose scenario contains term, case-insensitively.
func Search(records []responses.Record, term string) []responses.Record {
	term = strings.ToLower(term)
	var matched []responses.Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Scenario), term) {
			matched = append(matched, r)
		}
	}
	return matched
}
