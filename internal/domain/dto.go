package domain

// DesignForm holds the raw fields posted from the design page.
type DesignForm struct {
	Name        string   `validate:"required,min=5"`
	Ingredients []string `validate:"min=1,dive,required"`
}

type OrderForm struct {
	DeliveryName   string `validate:"required"`
	DeliveryStreet string `validate:"required"`
	DeliveryCity   string `validate:"required"`
	DeliveryState  string `validate:"required"`
	DeliveryZip    string `validate:"required"`
	CCNumber       string `validate:"required,credit_card"`
	CCExpiration   string `validate:"required,ccexpiration"`
	CCCVV          string `validate:"required,len=3,numeric"`
	Tacos          int    `validate:"min=1"` // number of tacos in the session order
}

type RegistrationForm struct {
	Username        string `validate:"required,min=3,max=50,alphanum"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Fullname        string `validate:"required"`
	Street          string
	City            string
	State           string
	Zip             string
	PhoneNumber     string `validate:"omitempty,max=20"`
}

type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// TacoSummary is the JSON view of a taco returned by the API.
type TacoSummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	CreatedAt   string   `json:"created_at"`
	Ingredients []string `json:"ingredients"`
}
