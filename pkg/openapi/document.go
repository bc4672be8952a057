// Package openapi builds a small OpenAPI 3.1 document describing the
// service's routes and serves it as JSON.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Version is the OpenAPI specification version documents declare.
const Version = "3.1.0"

// Document is the root OpenAPI object.
type Document struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Servers    []Server            `json:"servers,omitempty"`
	Paths      map[string]PathItem `json:"paths"`
	Components *Components         `json:"components,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

type Server struct {
	URL string `json:"url"`
}

// PathItem maps lowercase HTTP methods to operations.
type PathItem map[string]*Operation

// New starts a document titled from cfg, stamped with the service version.
// Paths are documented relative to basePath.
func New(cfg Config, version, basePath string) *Document {
	doc := &Document{
		OpenAPI: Version,
		Info: Info{
			Title:       cfg.Title,
			Version:     version,
			Description: cfg.Description,
		},
		Paths:      make(map[string]PathItem),
		Components: NewComponents(),
	}
	if basePath != "" {
		doc.Servers = []Server{{URL: basePath}}
	}
	return doc
}

// Handle documents op as the handler for method on path.
func (d *Document) Handle(method, path string, op *Operation) {
	item, ok := d.Paths[path]
	if !ok {
		item = PathItem{}
		d.Paths[path] = item
	}
	item[strings.ToLower(method)] = op
}

// Handler renders the document once and returns a handler serving the
// rendered bytes.
func (d *Document) Handler() (http.HandlerFunc, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render openapi document: %w", err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(data)
	}, nil
}
