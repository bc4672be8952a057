// Package module mounts prefixed HTTP handlers, each carrying its own
// middleware stack, behind a single top-level router.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rizzorrisk/rizz/pkg/middleware"
)

// Module strips its prefix and delegates to an inner router wrapped in its
// own middleware stack.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a Module with a single-level prefix such as "/api".
// Panics if the prefix is empty, missing a leading slash, or multi-level.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use adds middleware to the module's stack.
func (m *Module) Use(mw middleware.Func) {
	m.middleware.Use(mw)
}

// Serve strips the module prefix and dispatches to the wrapped router.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	m.middleware.Apply(m.router).ServeHTTP(w, stripPrefix(req, m.prefix))
}

func stripPrefix(req *http.Request, prefix string) *http.Request {
	path := strings.TrimPrefix(req.URL.Path, prefix)
	if path == "" {
		path = "/"
	}

	request := req.Clone(req.Context())
	request.URL = new(url.URL)
	*request.URL = *req.URL
	request.URL.Path = path
	request.URL.RawPath = ""
	return request
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
