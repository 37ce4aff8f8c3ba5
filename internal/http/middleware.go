package http

import (
	"context"
	"net/http"

	"github.com/acehidan/otastaionary-ecommence/internal/shell"
)

// SessionCookie carries the browsing-session ID. Sessions are anonymous;
// the cookie only ties a browser to its in-memory shell.
const SessionCookie = "session_id"

type ctxKey int

const shellKey ctxKey = iota

// SessionMiddleware resolves the request's shell from the session cookie,
// minting a new session (and cookie) when the request has none or the
// session has been swept.
func SessionMiddleware(store *shell.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sh *shell.Shell

			if c, err := r.Cookie(SessionCookie); err == nil {
				sh, _ = store.Get(c.Value)
			}
			if sh == nil {
				var id string
				id, sh = store.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), shellKey, sh)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func shellFromContext(ctx context.Context) *shell.Shell {
	sh, _ := ctx.Value(shellKey).(*shell.Shell)
	return sh
}
