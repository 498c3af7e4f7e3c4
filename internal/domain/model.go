package domain

import (
	"strings"
	"time"
)

type IngredientType string

const (
	Wrap    IngredientType = "WRAP"
	Protein IngredientType = "PROTEIN"
	Veggies IngredientType = "VEGGIES"
	Cheese  IngredientType = "CHEESE"
	Sauce   IngredientType = "SAUCE"
)

// IngredientTypes lists every category in display order.
var IngredientTypes = []IngredientType{Wrap, Protein, Veggies, Cheese, Sauce}

// Key is the lower-case name used in views ("wrap", "protein", ...).
func (t IngredientType) Key() string { return strings.ToLower(string(t)) }

func (t IngredientType) Valid() bool {
	for _, v := range IngredientTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Ingredient struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Type IngredientType `json:"type"`
}

type Taco struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Ingredients []string  `json:"ingredients"` // ingredient ids, in selection order
}

type Delivery struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Order accumulates tacos in the session until checkout.
type Order struct {
	ID           int64     `json:"id,omitempty"`
	PlacedAt     time.Time `json:"placed_at,omitempty"`
	UserID       int64     `json:"user_id,omitempty"`
	Delivery     Delivery  `json:"delivery"`
	CCNumber     string    `json:"cc_number,omitempty"`
	CCExpiration string    `json:"cc_expiration,omitempty"`
	CCCVV        string    `json:"cc_cvv,omitempty"`
	Tacos        []Taco    `json:"tacos"`
}

func NewOrder() Order { return Order{Tacos: []Taco{}} }

func (o *Order) AddDesign(t Taco) { o.Tacos = append(o.Tacos, t) }

type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"-"` // bcrypt hash
	Fullname    string `json:"fullname"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	PhoneNumber string `json:"phone_number"`
}
