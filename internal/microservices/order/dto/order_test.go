package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taco-cloud/internal/domain"
)

func TestPrefillKeepsTypedValues(t *testing.T) {
	u := domain.User{Fullname: "Craig Walls", Street: "1 Main", City: "Dallas", State: "TX", Zip: "75001"}

	got := Prefill(domain.OrderForm{DeliveryCity: "Austin"}, u)
	assert.Equal(t, "Craig Walls", got.DeliveryName)
	assert.Equal(t, "Austin", got.DeliveryCity)
	assert.Equal(t, "75001", got.DeliveryZip)
}

func TestApply(t *testing.T) {
	o := domain.NewOrder()
	o.AddDesign(domain.Taco{ID: 3})

	got := Apply(o, domain.OrderForm{DeliveryName: "Craig", DeliveryZip: "75001", CCNumber: "4111111111111111", CCExpiration: "10/29", CCCVV: "123"})
	assert.Equal(t, "Craig", got.Delivery.Name)
	assert.Equal(t, "75001", got.Delivery.Zip)
	assert.Equal(t, "123", got.CCCVV)
	assert.Len(t, got.Tacos, 1)
}
