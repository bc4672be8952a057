// Package routes declares method and pattern bindings grouped under shared prefixes.
package routes

import (
	"net/http"

	"github.com/rizzorrisk/rizz/pkg/middleware"
)

// Group organizes routes under a common prefix. Middleware applies to every
// route in the group and its children, outermost first.
type Group struct {
	Prefix     string
	Middleware []middleware.Func
	Routes     []Route
	Children   []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", nil, group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, parentMW []middleware.Func, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	mw := append(append([]middleware.Func{}, parentMW...), group.Middleware...)

	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.Handle(pattern, middleware.Chain(route.Handler, mw...))
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, mw, child)
	}
}

// Route binds an HTTP method and pattern to a handler. Pattern is appended
// to the enclosing group prefixes and may use ServeMux wildcards.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
