package dto

import (
	"strings"

	"taco-cloud/internal/common/validation"
	"taco-cloud/internal/domain"
)

const RedirectCurrentOrder = "/orders/current"

// DesignModel is the render context of the design page.
type DesignModel struct {
	Types       []domain.IngredientType
	Ingredients map[string][]domain.Ingredient // keyed by IngredientType.Key()
	User        domain.User
	Design      domain.DesignForm
	Errors      validation.FieldErrors
}

func (m DesignModel) ByType(t domain.IngredientType) []domain.Ingredient {
	return m.Ingredients[t.Key()]
}

// Selected reports whether the echoed form had ingredient id checked.
func (m DesignModel) Selected(id string) bool {
	for _, s := range m.Design.Ingredients {
		if s == id {
			return true
		}
	}
	return false
}

// GroupByType partitions ingredients by category, keeping store order.
// Every category is present, empty when nothing matches.
func GroupByType(ingredients []domain.Ingredient) map[string][]domain.Ingredient {
	out := make(map[string][]domain.Ingredient, len(domain.IngredientTypes))
	for _, t := range domain.IngredientTypes {
		out[t.Key()] = []domain.Ingredient{}
	}
	for _, in := range ingredients {
		key := in.Type.Key()
		if _, ok := out[key]; !ok {
			continue
		}
		out[key] = append(out[key], in)
	}
	return out
}

// DesignResult is either ValidDesign or InvalidDesign.
type DesignResult interface {
	isDesignResult()
}

type ValidDesign struct {
	Taco domain.Taco
}

type InvalidDesign struct {
	Form   domain.DesignForm
	Errors validation.FieldErrors
}

func (ValidDesign) isDesignResult()   {}
func (InvalidDesign) isDesignResult() {}

// DecodeDesign validates the submitted form. When known is non-nil, ingredient
// ids missing from it are reported as field errors too.
func DecodeDesign(v *validation.Validator, form domain.DesignForm, known map[string]bool) (DesignResult, error) {
	form.Name = strings.TrimSpace(form.Name)

	errs, err := v.Check(form)
	if err != nil {
		return nil, err
	}
	if known != nil && !errs.Has("Ingredients") {
		for _, id := range form.Ingredients {
			if !known[id] {
				errs = append(errs, validation.FieldError{Field: "Ingredients", Message: "Unknown ingredient " + id})
				break
			}
		}
	}
	if len(errs) > 0 {
		return InvalidDesign{Form: form, Errors: errs}, nil
	}
	return ValidDesign{Taco: domain.Taco{
		Name:        form.Name,
		Ingredients: append([]string(nil), form.Ingredients...),
	}}, nil
}

// DesignMessages registers the user-facing messages of the taco rules.
func DesignMessages(v *validation.Validator) *validation.Validator {
	return v.
		Message("DesignForm", "Name", "required", "Name is required").
		Message("DesignForm", "Name", "min", "Name must be at least 5 characters long").
		Message("DesignForm", "Ingredients", "min", "You must choose at least 1 ingredient").
		Message("DesignForm", "Ingredients", "required", "You must choose at least 1 ingredient")
}
