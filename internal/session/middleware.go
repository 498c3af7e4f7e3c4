package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const CookieName = "TACOSESSION"

type ctxKey struct{}

type cookieOptsKey struct{}

type cookieOpts struct {
	ttl    time.Duration
	secure bool
}

// Middleware makes sure every request carries a session id, minting one and
// setting the cookie when the browser has none.
func Middleware(ttl time.Duration, secure bool) func(http.Handler) http.Handler {
	opts := cookieOpts{ttl: ttl, secure: secure}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(CookieName); err == nil {
				if _, perr := uuid.Parse(c.Value); perr == nil {
					id = c.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
			}
			http.SetCookie(w, opts.cookie(id))

			ctx := context.WithValue(WithID(r.Context(), id), cookieOptsKey{}, opts)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Reissue replaces the session cookie already queued on w with one for id.
// It must run before the response header is written.
func Reissue(ctx context.Context, w http.ResponseWriter, id string) {
	opts, _ := ctx.Value(cookieOptsKey{}).(cookieOpts)

	h := w.Header()
	kept := h["Set-Cookie"][:0]
	for _, v := range h["Set-Cookie"] {
		if !strings.HasPrefix(v, CookieName+"=") {
			kept = append(kept, v)
		}
	}
	h["Set-Cookie"] = kept
	http.SetCookie(w, opts.cookie(id))
}

func (o cookieOpts) cookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(o.ttl / time.Second),
		HttpOnly: true,
		Secure:   o.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
