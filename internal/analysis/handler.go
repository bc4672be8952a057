package analysis

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/rizzorrisk/rizz/internal/emotions"
	"github.com/rizzorrisk/rizz/internal/verdicts"
	"github.com/rizzorrisk/rizz/pkg/auth"
	"github.com/rizzorrisk/rizz/pkg/handlers"
	"github.com/rizzorrisk/rizz/pkg/routes"
)

const processingMessage = "Sorry, something went wrong. Please try again later."

// Handler provides the HTTP endpoint for scenario analysis.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler. Request bodies larger than maxUploadSize
// are rejected with 413.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "analysis"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyze",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Analyze},
		},
	}
}

type successResponse struct {
	Emotions       []emotions.Score `json:"emotions"`
	Classification emotions.Tone    `json:"classification"`
	Message        string           `json:"message"`
	Success        bool             `json:"success"`
}

// failureResponse deliberately has no message field.
type failureResponse struct {
	Error          string           `json:"error"`
	Emotions       []emotions.Score `json:"emotions"`
	Classification emotions.Tone    `json:"classification"`
	ErrorMessage   string           `json:"errorMessage"`
	Success        bool             `json:"success"`
}

type processingResponse struct {
	Error        string `json:"error"`
	Details      string `json:"details"`
	ErrorMessage string `json:"errorMessage"`
	Success      bool   `json:"success"`
}

type analyzeRequest struct {
	Scenario string `json:"scenario"`
}

// Analyze accepts a scenario as JSON {scenario} or as multipart form data
// with a scenario field and an optional file, and returns the verdict.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	sub, err := h.submission(r)
	if err != nil {
		h.respondProcessing(w, err)
		return
	}

	result, err := h.sys.Analyze(r.Context(), auth.SessionFrom(r.Context()), sub)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if !result.OK() {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, failureResponse{
			Error:          verdicts.Describe(result.Err),
			Emotions:       result.Emotions,
			Classification: result.Classification,
			ErrorMessage:   result.Fallback,
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, successResponse{
		Emotions:       result.Emotions,
		Classification: result.Classification,
		Message:        result.Message,
		Success:        true,
	})
}

func (h *Handler) submission(r *http.Request) (Submission, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return h.multipart(r)
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return Submission{}, err
	}
	return Submission{Scenario: req.Scenario}, nil
}

func (h *Handler) multipart(r *http.Request) (Submission, error) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return Submission{}, err
	}

	sub := Submission{Scenario: r.FormValue("scenario")}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return sub, nil
	}
	if err != nil {
		return Submission{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Submission{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	sub.Attachment = &Attachment{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}
	return sub, nil
}

func (h *Handler) respondProcessing(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	h.logger.Error("analysis request unreadable", "status", status, "error", err)
	handlers.RespondJSON(w, status, processingResponse{
		Error:        ErrProcessing.Error(),
		Details:      err.Error(),
		ErrorMessage: processingMessage,
	})
}
