package session

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
)

// CSRFField is the form field every state-changing page request must carry.
const CSRFField = "_csrf"

type csrfKey struct{}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfKey{}, token)
}

func CSRFTokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(csrfKey{}).(string)
	return t
}

// CSRF binds a random token to the session and rejects POST, PUT, PATCH and
// DELETE requests whose form value does not match it. It runs after Middleware.
func CSRF(store Store, onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id := IDFromContext(ctx)
			s, err := store.Get(ctx, id)
			if err != nil {
				onError(w, r, err)
				return
			}

			if !safeMethod(r.Method) {
				sent := r.PostFormValue(CSRFField)
				if s.CSRFToken == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(s.CSRFToken)) != 1 {
					http.Error(w, "Invalid or missing CSRF token", http.StatusForbidden)
					return
				}
			}

			if s.CSRFToken == "" {
				s, err = store.Update(ctx, id, func(s *Session) error {
					if s.CSRFToken == "" {
						s.CSRFToken = newCSRFToken()
					}
					return nil
				})
				if err != nil {
					onError(w, r, err)
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(WithCSRFToken(ctx, s.CSRFToken)))
		})
	}
}

func safeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func newCSRFToken() string {
	b := make([]byte, 32)
	// crypto/rand.Read never fails on supported platforms.
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
