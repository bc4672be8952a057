package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rizzorrisk/rizz/pkg/handlers"
)

// Router dispatches requests to mounted modules by first path segment and
// falls back to a native ServeMux. Unmatched paths receive a JSON 404.
type Router struct {
	modules map[string]*Module
	native  *http.ServeMux
}

// NewRouter creates a Router with no modules mounted.
func NewRouter() *Router {
	native := http.NewServeMux()
	native.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusNotFound, handlers.ErrorResponse{Error: "Not found"})
	})

	return &Router{
		modules: make(map[string]*Module),
		native:  native,
	}
}

// HandleNative registers a handler on the fallback mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix. Panics on a duplicate prefix.
func (r *Router) Mount(m *Module) {
	if _, exists := r.modules[m.prefix]; exists {
		panic(fmt.Sprintf("module already mounted at %s", m.prefix))
	}
	r.modules[m.prefix] = m
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}

	if m, ok := r.modules[firstSegment(path)]; ok {
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}
