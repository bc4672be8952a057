package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rizzorrisk/rizz/pkg/handlers"
)

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the Session stored in ctx, or nil when anonymous.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// Middleware resolves the request's bearer token into a Session.
// Requests without a token continue anonymously. A token that fails
// verification is rejected with 401. With a disabled verifier tokens
// are ignored.
func Middleware(v Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logger.With("middleware", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearer(r)
			if !ok || !v.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			session, err := v.Verify(r.Context(), raw)
			if err != nil {
				handlers.RespondError(w, logger, MapHTTPStatus(err), ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireSession rejects anonymous requests with 401.
func RequireSession(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionFrom(r.Context()) == nil {
				handlers.RespondError(w, logger, http.StatusUnauthorized, ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearer(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
