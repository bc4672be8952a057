// Package middleware provides HTTP middleware stacks plus request logging and CORS.
package middleware

import "net/http"

// Func wraps an http.Handler with additional behavior.
type Func func(http.Handler) http.Handler

// System manages an ordered stack of HTTP middleware.
type System interface {
	Use(mw Func)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	fns []Func
}

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn Func) {
	s.fns = append(s.fns, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	return Chain(handler, s.fns...)
}

// Chain wraps handler so that fns execute in the order given.
func Chain(handler http.Handler, fns ...Func) http.Handler {
	for i := len(fns) - 1; i >= 0; i-- {
		handler = fns[i](handler)
	}
	return handler
}
