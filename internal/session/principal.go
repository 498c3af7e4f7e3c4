package session

import (
	"context"
	"net/http"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, principalKey{}, username)
}

func PrincipalFromContext(ctx context.Context) string {
	u, _ := ctx.Value(principalKey{}).(string)
	return u
}

// RequireUser lets the request through only when its session has a logged-in
// user; anyone else is sent to loginPath. It must run after Middleware.
func RequireUser(store Store, loginPath string, onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := store.Get(r.Context(), IDFromContext(r.Context()))
			if err != nil {
				onError(w, r, err)
				return
			}
			if s.Username == "" {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), s.Username)))
		})
	}
}
