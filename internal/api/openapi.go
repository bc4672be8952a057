package api

import (
	"net/http"

	"github.com/rizzorrisk/rizz/internal/config"
	"github.com/rizzorrisk/rizz/pkg/openapi"
	"github.com/rizzorrisk/rizz/pkg/routes"
)

var schemas = map[string]*openapi.Schema{
	"Emotion": openapi.Object([]string{"label", "score"}, map[string]*openapi.Schema{
		"label": {Type: "string", Example: "anger"},
		"score": {Type: "number", Example: 0.81},
	}),
	"AnalyzeRequest": openapi.Object([]string{"scenario"}, map[string]*openapi.Schema{
		"scenario": {Type: "string", Example: "they left me on read for 3 hours"},
	}),
	"AnalyzeForm": openapi.Object([]string{"scenario"}, map[string]*openapi.Schema{
		"scenario": {Type: "string"},
		"file":     {Type: "string", Format: "binary", Description: "Optional screenshot"},
	}),
	"AnalyzeResult": openapi.Object([]string{"emotions", "classification", "message", "success"}, map[string]*openapi.Schema{
		"emotions":       openapi.ArrayOf("Emotion"),
		"classification": {Type: "string"},
		"message":        {Type: "string"},
		"success":        {Type: "boolean"},
	}),
	"AnalyzeFailure": openapi.Object([]string{"error", "emotions", "classification", "errorMessage", "success"}, map[string]*openapi.Schema{
		"error":          {Type: "string"},
		"emotions":       openapi.ArrayOf("Emotion"),
		"classification": {Type: "string"},
		"errorMessage":   {Type: "string"},
		"success":        {Type: "boolean"},
	}),
	"Swipe": openapi.Object([]string{"cardId", "scenario", "choice"}, map[string]*openapi.Schema{
		"cardId":   {Type: "integer"},
		"scenario": {Type: "string"},
		"choice":   {Type: "string", Enum: []any{"rizz", "risk"}},
	}),
	"SwipeRequest": openapi.Object([]string{"swipeResults"}, map[string]*openapi.Schema{
		"swipeResults": openapi.ArrayOf("Swipe"),
	}),
	"Judgment": openapi.Object([]string{"judgment", "deluluRating"}, map[string]*openapi.Schema{
		"error":        {Type: "string", Description: "Present only on failure"},
		"judgment":     {Type: "string"},
		"deluluRating": {Type: "number"},
	}),
	"Card": openapi.Object([]string{"id", "scenario"}, map[string]*openapi.Schema{
		"id":       {Type: "integer"},
		"scenario": {Type: "string"},
	}),
	"Record": openapi.Object([]string{"scenario", "classification", "message", "emotions", "timestamp"}, map[string]*openapi.Schema{
		"id":             {Type: "string", Format: "uuid"},
		"scenario":       {Type: "string"},
		"classification": {Type: "string"},
		"message":        {Type: "string"},
		"emotions":       openapi.ArrayOf("Emotion"),
		"timestamp":      {Type: "string", Format: "date-time"},
		"attachmentKey":  {Type: "string"},
		"gameData": openapi.Object(nil, map[string]*openapi.Schema{
			"swipeResults": openapi.ArrayOf("Swipe"),
			"deluluRating": {Type: "integer"},
		}),
	}),
	"Summary": openapi.Object(nil, map[string]*openapi.Schema{
		"total":         {Type: "integer"},
		"redFlags":      {Type: "integer"},
		"greenFlags":    {Type: "integer"},
		"milestones":    {Type: "array", Items: openapi.Object(nil, nil)},
		"nextMilestone": openapi.Object(nil, nil),
		"canShareBadge": {Type: "boolean"},
		"swipes":        openapi.Object(nil, nil),
		"recent":        openapi.ArrayOf("Record"),
	}),
	"RecordPage": openapi.Object(nil, map[string]*openapi.Schema{
		"data":        openapi.ArrayOf("Record"),
		"total":       {Type: "integer"},
		"page":        {Type: "integer"},
		"page_size":   {Type: "integer"},
		"total_pages": {Type: "integer"},
	}),
}

func buildDocument(cfg *config.Config) *openapi.Document {
	doc := openapi.New(cfg.API.OpenAPI, cfg.Version, cfg.API.BasePath)
	doc.Components.AddSchemas(schemas)
	doc.Components.AddResponses(map[string]*openapi.Response{
		"ServerError": openapi.JSON("Request could not be processed", openapi.Ref("Judgment")),
	})

	bad := openapi.Use("BadRequest")
	unauthorized := openapi.Use("Unauthorized")

	doc.Handle("POST", "/analyze", &openapi.Operation{
		Summary: "Analyze a scenario",
		Tags:    []string{"analysis"},
		RequestBody: openapi.Body(map[string]string{
			"application/json":    "AnalyzeRequest",
			"multipart/form-data": "AnalyzeForm",
		}),
		Responses: map[int]*openapi.Response{
			http.StatusOK:                    openapi.JSON("Verdict", openapi.Ref("AnalyzeResult")),
			http.StatusBadRequest:            bad,
			http.StatusRequestEntityTooLarge: {Description: "Upload exceeds the size limit"},
			http.StatusServiceUnavailable:    openapi.JSON("Verdict unavailable", openapi.Ref("AnalyzeFailure")),
		},
	})

	doc.Handle("POST", "/flags", &openapi.Operation{
		Summary:     "Judge a swipe game",
		Tags:        []string{"swipes"},
		RequestBody: openapi.Body(map[string]string{"application/json": "SwipeRequest"}),
		Responses: map[int]*openapi.Response{
			http.StatusOK:                  openapi.JSON("Judgment", openapi.Ref("Judgment")),
			http.StatusBadRequest:          bad,
			http.StatusInternalServerError: openapi.Use("ServerError"),
		},
	})

	doc.Handle("GET", "/flags/cards", &openapi.Operation{
		Summary:    "Deal swipe cards",
		Tags:       []string{"swipes"},
		Parameters: []*openapi.Parameter{openapi.Query("count", "integer", "Cards to deal (default 5)")},
		Responses: map[int]*openapi.Response{
			http.StatusOK:         openapi.JSON("Dealt cards", openapi.ArrayOf("Card")),
			http.StatusBadRequest: bad,
		},
	})

	doc.Handle("GET", "/dashboard", &openapi.Operation{
		Summary: "Dashboard summary",
		Tags:    []string{"dashboard"},
		Responses: map[int]*openapi.Response{
			http.StatusOK:           openapi.JSON("Summary", openapi.Ref("Summary")),
			http.StatusUnauthorized: unauthorized,
		},
	})

	doc.Handle("GET", "/dashboard/responses", &openapi.Operation{
		Summary: "Response history, newest first",
		Tags:    []string{"dashboard"},
		Parameters: []*openapi.Parameter{
			openapi.Query("page", "integer", "Page number"),
			openapi.Query("page_size", "integer", "Results per page"),
			openapi.Query("search", "string", "Scenario substring"),
		},
		Responses: map[int]*openapi.Response{
			http.StatusOK:           openapi.JSON("Page of records", openapi.Ref("RecordPage")),
			http.StatusUnauthorized: unauthorized,
		},
	})

	doc.Handle("GET", "/attachments/{key}", &openapi.Operation{
		Summary:    "Download an attachment",
		Tags:       []string{"attachments"},
		Parameters: []*openapi.Parameter{openapi.Path("key", "Attachment key from a record")},
		Responses: map[int]*openapi.Response{
			http.StatusOK:           {Description: "Attachment bytes"},
			http.StatusUnauthorized: unauthorized,
			http.StatusNotFound:     openapi.Use("NotFound"),
		},
	})

	return doc
}

func docsRoutes(cfg *config.Config) (routes.Group, error) {
	serve, err := buildDocument(cfg).Handler()
	if err != nil {
		return routes.Group{}, err
	}

	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/openapi.json", Handler: serve},
		},
	}, nil
}
