package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/uniformworks/portal-backend/pkg/logger"
)

const (
	// SessionHeader carries the cart session id. Clients that omit it get a
	// fresh id minted here, echoed on both header and cookie.
	SessionHeader = "X-Session-Id"
	sessionCookie = "portal_session"
)

type sessionKey struct{}

// Session resolves the caller's cart session id from the header, then the
// cookie, minting a new one when neither is present. The id ends up in the
// request context and on the response so the client can replay it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				if cookie, err := r.Cookie(sessionCookie); err == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionHeader, sessionID)
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session id resolved by Session, or "" when the
// middleware did not run.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
