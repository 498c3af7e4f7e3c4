package web

import (
	"net/http"
	"time"

	"taco-cloud/internal/common/httpx"
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/common/metrics"
	"taco-cloud/internal/connections/rabbitmq"
	authhandlers "taco-cloud/internal/microservices/auth/handlers"
	authservice "taco-cloud/internal/microservices/auth/service"
	designhandlers "taco-cloud/internal/microservices/design/handlers"
	designservice "taco-cloud/internal/microservices/design/service"
	orderhandlers "taco-cloud/internal/microservices/order/handlers"
	orderservice "taco-cloud/internal/microservices/order/service"
	tacohandler "taco-cloud/internal/microservices/tacos/handler"
	tacoservice "taco-cloud/internal/microservices/tacos/service"
	"taco-cloud/internal/repository"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

const loginPath = "/login"

type Deps struct {
	Repo         *repository.Repository
	Sessions     session.Store
	Publisher    rabbitmq.Publisher // nil disables order events
	Renderer     views.Renderer
	Log          *logger.Logger
	SessionTTL   time.Duration
	SecureCookie bool
}

// Router builds the whole web surface. Pages run behind the session cookie
// and CSRF middleware; /metrics and the JSON API do not need a session.
func Router(d Deps) http.Handler {
	design := designhandlers.New(designservice.New(d.Repo, d.Sessions, d.Log), d.Renderer, d.Log).DesignHandler
	order := orderhandlers.New(orderservice.New(d.Repo, d.Sessions, d.Publisher, d.Log), d.Renderer, d.Log).OrderHandler
	auth := authhandlers.New(authservice.New(d.Repo, d.Sessions, d.Log), d.Renderer, d.Log).AuthHandler
	home := &homeHandler{sessions: d.Sessions, renderer: d.Renderer, log: d.Log}

	sessionError := func(w http.ResponseWriter, r *http.Request, err error) {
		httpx.ServerError(w, r, d.Log, "session_load_failed", err)
	}
	requireUser := session.RequireUser(d.Sessions, loginPath, sessionError)

	pages := http.NewServeMux()
	handle := func(pattern string, h http.Handler) {
		pages.Handle(pattern, metrics.InstrumentHandler(pattern, h))
	}
	handle("GET /{$}", http.HandlerFunc(home.Show))
	handle("GET /login", http.HandlerFunc(auth.ShowLogin))
	handle("POST /login", http.HandlerFunc(auth.Login))
	handle("POST /logout", http.HandlerFunc(auth.Logout))
	handle("GET /register", http.HandlerFunc(auth.ShowRegister))
	handle("POST /register", http.HandlerFunc(auth.Register))
	handle("GET /design", requireUser(http.HandlerFunc(design.ShowDesignForm)))
	handle("POST /design", requireUser(http.HandlerFunc(design.ProcessDesign)))
	handle("GET /orders/current", requireUser(http.HandlerFunc(order.CurrentOrder)))
	handle("POST /orders", requireUser(http.HandlerFunc(order.PlaceOrder)))

	api := http.NewServeMux()
	tacohandler.Register(api, tacohandler.New(tacoservice.New(d.Repo), d.Log))

	root := http.NewServeMux()
	root.Handle("GET /metrics", metrics.Handler())
	root.Handle("/api/", metrics.InstrumentHandler("/api/tacos", api))
	root.Handle("/", session.Middleware(d.SessionTTL, d.SecureCookie)(session.CSRF(d.Sessions, sessionError)(pages)))
	return root
}
