package service

import (
	"context"
	"fmt"

	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/common/metrics"
	"taco-cloud/internal/common/validation"
	"taco-cloud/internal/domain"
	"taco-cloud/internal/microservices/design/dto"
	"taco-cloud/internal/repository"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

type DesignServiceInterface interface {
	ShowDesignForm(ctx context.Context, sessionID, username string) (dto.DesignModel, error)
	ProcessDesign(ctx context.Context, sessionID, username string, form domain.DesignForm) (views.Outcome, error)
}

type DesignService struct {
	ingredients repository.IngredientRepositoryInterface
	tacos       repository.TacoRepositoryInterface
	users       repository.UserRepositoryInterface
	sessions    session.Store
	validator   *validation.Validator
	log         *logger.Logger
}

func NewDesignService(
	ingredients repository.IngredientRepositoryInterface,
	tacos repository.TacoRepositoryInterface,
	users repository.UserRepositoryInterface,
	sessions session.Store,
	lg *logger.Logger,
) *DesignService {
	return &DesignService{
		ingredients: ingredients,
		tacos:       tacos,
		users:       users,
		sessions:    sessions,
		validator:   dto.DesignMessages(validation.New()),
		log:         lg,
	}
}

// ShowDesignForm opens the session order if needed and builds the design page
// context: every category's ingredients plus the caller's user record.
func (s *DesignService) ShowDesignForm(ctx context.Context, sessionID, username string) (dto.DesignModel, error) {
	s.log.Debug("designing_taco", map[string]any{"username": username})

	if _, err := s.sessions.Update(ctx, sessionID, func(*session.Session) error { return nil }); err != nil {
		return dto.DesignModel{}, fmt.Errorf("failed to open session order: %w", err)
	}

	all, err := s.ingredients.FindAll(ctx)
	if err != nil {
		return dto.DesignModel{}, fmt.Errorf("failed to load ingredients: %w", err)
	}
	return s.model(ctx, username, all)
}

// ProcessDesign saves a valid taco and appends it to the session order, in
// that order. Invalid submissions only re-render the form.
func (s *DesignService) ProcessDesign(ctx context.Context, sessionID, username string, form domain.DesignForm) (views.Outcome, error) {
	all, err := s.ingredients.FindAll(ctx)
	if err != nil {
		return views.Outcome{}, fmt.Errorf("failed to load ingredients: %w", err)
	}
	known := make(map[string]bool, len(all))
	for _, in := range all {
		known[in.ID] = true
	}

	res, err := dto.DecodeDesign(s.validator, form, known)
	if err != nil {
		return views.Outcome{}, err
	}

	switch r := res.(type) {
	case dto.InvalidDesign:
		metrics.DesignValidationFailures.Inc()
		s.log.Debug("design_rejected", map[string]any{"username": username, "errors": r.Errors.Error()})

		model, err := s.model(ctx, username, all)
		if err != nil {
			return views.Outcome{}, err
		}
		model.Design = r.Form
		model.Errors = r.Errors
		return views.Show(views.Design, model), nil

	case dto.ValidDesign:
		saved, err := s.tacos.Save(ctx, r.Taco)
		if err != nil {
			return views.Outcome{}, fmt.Errorf("failed to save taco: %w", err)
		}
		_, err = s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
			sess.Order.AddDesign(saved)
			return nil
		})
		if err != nil {
			return views.Outcome{}, fmt.Errorf("failed to add taco %d to order: %w", saved.ID, err)
		}
		metrics.TacosDesigned.Inc()
		s.log.Info("taco_saved", map[string]any{"taco_id": saved.ID, "name": saved.Name, "username": username})
		return views.RedirectTo(dto.RedirectCurrentOrder), nil

	default:
		return views.Outcome{}, fmt.Errorf("unexpected design result %T", res)
	}
}

func (s *DesignService) model(ctx context.Context, username string, all []domain.Ingredient) (dto.DesignModel, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return dto.DesignModel{}, fmt.Errorf("failed to resolve principal: %w", err)
	}
	return dto.DesignModel{
		Types:       domain.IngredientTypes,
		Ingredients: dto.GroupByType(all),
		User:        user,
	}, nil
}
