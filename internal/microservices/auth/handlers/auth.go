package handlers

import (
	"net/http"

	"taco-cloud/internal/common/httpx"
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/domain"
	"taco-cloud/internal/microservices/auth/dto"
	"taco-cloud/internal/microservices/auth/service"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

type AuthHandler struct {
	service  service.AuthServiceInterface
	renderer views.Renderer
	log      *logger.Logger
}

func NewAuthHandler(s service.AuthServiceInterface, renderer views.Renderer, lg *logger.Logger) *AuthHandler {
	return &AuthHandler{service: s, renderer: renderer, log: lg}
}

func (ah *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	ah.respond(w, r, views.Show(views.Login, dto.LoginModel{}))
}

func (ah *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	form := domain.LoginForm{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	out, err := ah.service.Login(r.Context(), session.IDFromContext(r.Context()), form)
	if err != nil {
		httpx.ServerError(w, r, ah.log, "login_failed", err)
		return
	}
	ah.respond(w, r, out)
}

func (ah *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	out, err := ah.service.Logout(r.Context(), session.IDFromContext(r.Context()))
	if err != nil {
		httpx.ServerError(w, r, ah.log, "logout_failed", err)
		return
	}
	ah.respond(w, r, out)
}

func (ah *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	ah.respond(w, r, views.Show(views.Register, dto.RegistrationModel{}))
}

func (ah *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	form := domain.RegistrationForm{
		Username:        r.PostForm.Get("username"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirm"),
		Fullname:        r.PostForm.Get("fullname"),
		Street:          r.PostForm.Get("street"),
		City:            r.PostForm.Get("city"),
		State:           r.PostForm.Get("state"),
		Zip:             r.PostForm.Get("zip"),
		PhoneNumber:     r.PostForm.Get("phone"),
	}
	out, err := ah.service.Register(r.Context(), form)
	if err != nil {
		httpx.ServerError(w, r, ah.log, "register_failed", err)
		return
	}
	ah.respond(w, r, out)
}

func (ah *AuthHandler) respond(w http.ResponseWriter, r *http.Request, out views.Outcome) {
	if err := views.Respond(w, r, ah.renderer, out); err != nil {
		httpx.ServerError(w, r, ah.log, "render_failed", err)
	}
}
