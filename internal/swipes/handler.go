package swipes

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rizzorrisk/rizz/internal/responses"
	"github.com/rizzorrisk/rizz/pkg/auth"
	"github.com/rizzorrisk/rizz/pkg/handlers"
	"github.com/rizzorrisk/rizz/pkg/routes"
)

// Handler provides HTTP endpoints for the swipe game.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler for sys.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "swipes"),
	}
}

// Routes returns the route group for swipe game endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/flags",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Judge},
			{Method: "GET", Pattern: "/cards", Handler: h.Cards},
		},
	}
}

// judgeRequest keeps swipeResults raw so a wrong type is a validation
// failure rather than a malformed body.
type judgeRequest struct {
	SwipeResults json.RawMessage `json:"swipeResults"`
}

type failureResponse struct {
	Error string `json:"error"`
	Judgment
}

// Judge accepts {swipeResults:[{cardId, scenario, choice}]} and returns the
// model's judgment.
func (h *Handler) Judge(w http.ResponseWriter, r *http.Request) {
	var req judgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondUnavailable(w, err)
		return
	}

	var swipes []responses.Swipe
	raw := bytes.TrimSpace(req.SwipeResults)
	if len(raw) == 0 || raw[0] != '[' || json.Unmarshal(raw, &swipes) != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidSwipes)
		return
	}

	judgment, err := h.sys.Judge(r.Context(), auth.SessionFrom(r.Context()), swipes)
	if err != nil {
		if errors.Is(err, ErrGenerator) {
			h.respondUnavailable(w, err)
			return
		}
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, judgment)
}

// Cards deals ?count= cards (default 5) from the scenario deck.
func (h *Handler) Cards(w http.ResponseWriter, r *http.Request) {
	n := DefaultHand
	if v := r.URL.Query().Get("count"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidCount)
			return
		}
		n = parsed
	}

	cards, err := h.sys.Deal(n)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cards)
}

func (h *Handler) respondUnavailable(w http.ResponseWriter, err error) {
	h.logger.Error("swipe judgment failed", "error", err)
	handlers.RespondJSON(w, http.StatusInternalServerError, failureResponse{
		Error:    ErrGenerator.Error(),
		Judgment: UnavailableJudgment,
	})
}
