package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/common/validation"
	"taco-cloud/internal/domain"
	"taco-cloud/internal/microservices/auth/dto"
	"taco-cloud/internal/repository"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

var ErrBadCredentials = errors.New("bad credentials")

type AuthServiceInterface interface {
	Login(ctx context.Context, sessionID string, form domain.LoginForm) (views.Outcome, error)
	Logout(ctx context.Context, sessionID string) (views.Outcome, error)
	Register(ctx context.Context, form domain.RegistrationForm) (views.Outcome, error)
}

type AuthService struct {
	users     repository.UserRepositoryInterface
	sessions  session.Store
	validator *validation.Validator
	cost      int
	log       *logger.Logger
}

func NewAuthService(users repository.UserRepositoryInterface, sessions session.Store, lg *logger.Logger) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		validator: dto.AuthMessages(validation.New()),
		cost:      bcrypt.DefaultCost,
		log:       lg,
	}
}

// Login checks the credentials and binds the username to a new session id,
// carrying over the order in progress.
func (as *AuthService) Login(ctx context.Context, sessionID string, form domain.LoginForm) (views.Outcome, error) {
	form.Username = strings.TrimSpace(form.Username)
	errs, err := as.validator.Check(form)
	if err != nil {
		return views.Outcome{}, err
	}
	if len(errs) > 0 {
		return views.Show(views.Login, dto.LoginModel{Form: domain.LoginForm{Username: form.Username}, Errors: errs}), nil
	}

	user, err := as.authenticate(ctx, form)
	if errors.Is(err, ErrBadCredentials) {
		as.log.Debug("login_rejected", map[string]any{"username": form.Username})
		return views.Show(views.Login, dto.LoginModel{
			Form:    domain.LoginForm{Username: form.Username},
			Message: dto.BadCredentialsMessage,
		}), nil
	}
	if err != nil {
		return views.Outcome{}, err
	}

	// A fresh id keeps a session planted before login from being taken over.
	s, err := session.Rotate(ctx, as.sessions, sessionID, func(s *session.Session) error {
		s.Username = user.Username
		return nil
	})
	if err != nil {
		return views.Outcome{}, fmt.Errorf("failed to store principal: %w", err)
	}
	as.log.Info("user_logged_in", map[string]any{"username": user.Username})
	out := views.RedirectTo(dto.RedirectAfterLogin)
	out.SessionID = s.ID
	return out, nil
}

func (as *AuthService) authenticate(ctx context.Context, form domain.LoginForm) (domain.User, error) {
	user, err := as.users.FindByUsername(ctx, form.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrBadCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		return domain.User{}, ErrBadCredentials
	}
	return user, nil
}

// Logout drops the whole session, including any order in progress.
func (as *AuthService) Logout(ctx context.Context, sessionID string) (views.Outcome, error) {
	if err := as.sessions.Delete(ctx, sessionID); err != nil {
		return views.Outcome{}, fmt.Errorf("failed to delete session: %w", err)
	}
	return views.RedirectTo(dto.RedirectAfterLogout), nil
}

func (as *AuthService) Register(ctx context.Context, form domain.RegistrationForm) (views.Outcome, error) {
	form = dto.Trim(form)
	errs, err := as.validator.Check(form)
	if err != nil {
		return views.Outcome{}, err
	}
	if len(errs) > 0 {
		return views.Show(views.Register, dto.RegistrationModel{Form: dto.Blank(form), Errors: errs}), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), as.cost)
	if err != nil {
		return views.Outcome{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user, err := as.users.Save(ctx, dto.ToUser(form, hash))
	if errors.Is(err, repository.ErrUsernameTaken) {
		errs = validation.FieldErrors{{Field: "Username", Message: "Username is already taken"}}
		return views.Show(views.Register, dto.RegistrationModel{Form: dto.Blank(form), Errors: errs}), nil
	}
	if err != nil {
		return views.Outcome{}, fmt.Errorf("failed to save user: %w", err)
	}
	as.log.Info("user_registered", map[string]any{"username": user.Username, "user_id": user.ID})
	return views.RedirectTo(dto.RedirectAfterRegister), nil
}
