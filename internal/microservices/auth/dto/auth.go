package dto

import (
	"strings"

	"taco-cloud/internal/common/validation"
	"taco-cloud/internal/domain"
)

const (
	RedirectAfterLogin    = "/design"
	RedirectAfterRegister = "/login"
	RedirectAfterLogout   = "/"

	BadCredentialsMessage = "Invalid username or password"
)

type LoginModel struct {
	Form    domain.LoginForm
	Message string
	Errors  validation.FieldErrors
}

type RegistrationModel struct {
	Form   domain.RegistrationForm
	Errors validation.FieldErrors
}

// ToUser builds the user record from a validated form; hash replaces the password.
func ToUser(form domain.RegistrationForm, hash []byte) domain.User {
	return domain.User{
		Username:    form.Username,
		Password:    string(hash),
		Fullname:    form.Fullname,
		Street:      form.Street,
		City:        form.City,
		State:       form.State,
		Zip:         form.Zip,
		PhoneNumber: form.PhoneNumber,
	}
}

// Trim strips surrounding blanks from every text field except the passwords.
func Trim(f domain.RegistrationForm) domain.RegistrationForm {
	f.Username = strings.TrimSpace(f.Username)
	f.Fullname = strings.TrimSpace(f.Fullname)
	f.Street = strings.TrimSpace(f.Street)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Zip = strings.TrimSpace(f.Zip)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	return f
}

// Blank drops the passwords so they are never echoed back into a page.
func Blank(f domain.RegistrationForm) domain.RegistrationForm {
	f.Password = ""
	f.ConfirmPassword = ""
	return f
}

func AuthMessages(v *validation.Validator) *validation.Validator {
	return v.
		Message("RegistrationForm", "Username", "required", "Username is required").
		Message("RegistrationForm", "Username", "min", "Username must be at least 3 characters long").
		Message("RegistrationForm", "Username", "max", "Username must be at most 50 characters long").
		Message("RegistrationForm", "Username", "alphanum", "Username may only contain letters and digits").
		Message("RegistrationForm", "Password", "required", "Password is required").
		Message("RegistrationForm", "Password", "min", "Password must be at least 6 characters long").
		Message("RegistrationForm", "ConfirmPassword", "required", "Passwords do not match").
		Message("RegistrationForm", "ConfirmPassword", "eqfield", "Passwords do not match").
		Message("RegistrationForm", "Fullname", "required", "Full name is required").
		Message("RegistrationForm", "PhoneNumber", "max", "Phone number is too long").
		Message("LoginForm", "Username", "required", "Username is required").
		Message("LoginForm", "Password", "required", "Password is required")
}
