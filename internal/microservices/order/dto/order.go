package dto

import (
	"taco-cloud/internal/common/validation"
	"taco-cloud/internal/domain"
)

const RedirectAfterCheckout = "/"

// OrderModel is the render context of the current-order page.
type OrderModel struct {
	Order  domain.Order
	User   domain.User
	Form   domain.OrderForm
	Errors validation.FieldErrors
}

// Prefill copies the user's profile into blank delivery fields.
func Prefill(form domain.OrderForm, u domain.User) domain.OrderForm {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&form.DeliveryName, u.Fullname)
	fill(&form.DeliveryStreet, u.Street)
	fill(&form.DeliveryCity, u.City)
	fill(&form.DeliveryState, u.State)
	fill(&form.DeliveryZip, u.Zip)
	return form
}

// Apply copies validated delivery and payment fields onto the order.
func Apply(o domain.Order, form domain.OrderForm) domain.Order {
	o.Delivery = domain.Delivery{
		Name:   form.DeliveryName,
		Street: form.DeliveryStreet,
		City:   form.DeliveryCity,
		State:  form.DeliveryState,
		Zip:    form.DeliveryZip,
	}
	o.CCNumber = form.CCNumber
	o.CCExpiration = form.CCExpiration
	o.CCCVV = form.CCCVV
	return o
}

func OrderMessages(v *validation.Validator) *validation.Validator {
	return v.
		Message("OrderForm", "DeliveryName", "required", "Delivery name is required").
		Message("OrderForm", "DeliveryStreet", "required", "Street is required").
		Message("OrderForm", "DeliveryCity", "required", "City is required").
		Message("OrderForm", "DeliveryState", "required", "State is required").
		Message("OrderForm", "DeliveryZip", "required", "Zip code is required").
		Message("OrderForm", "CCNumber", "required", "Not a valid credit card number").
		Message("OrderForm", "CCNumber", "credit_card", "Not a valid credit card number").
		Message("OrderForm", "CCExpiration", "required", "Must be formatted MM/YY").
		Message("OrderForm", "CCExpiration", "ccexpiration", "Must be formatted MM/YY").
		Message("OrderForm", "CCCVV", "required", "Invalid CVV").
		Message("OrderForm", "CCCVV", "len", "Invalid CVV").
		Message("OrderForm", "CCCVV", "numeric", "Invalid CVV").
		Message("OrderForm", "Tacos", "min", "Design at least one taco before ordering")
}
