package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taco-cloud/internal/common/validation"
	"taco-cloud/internal/domain"
)

func TestGroupByTypePartitionsExactly(t *testing.T) {
	in := []domain.Ingredient{
		{ID: "FLTO", Name: "Flour Tortilla", Type: domain.Wrap},
		{ID: "GRBF", Name: "Ground Beef", Type: domain.Protein},
		{ID: "COTO", Name: "Corn Tortilla", Type: domain.Wrap},
		{ID: "CHED", Name: "Cheddar", Type: domain.Cheese},
		{ID: "SLSA", Name: "Salsa", Type: domain.Sauce},
		{ID: "LETC", Name: "Lettuce", Type: domain.Veggies},
		{ID: "CARN", Name: "Carnitas", Type: domain.Protein},
	}

	got := GroupByType(in)
	require.Len(t, got, len(domain.IngredientTypes))

	seen := map[string]int{}
	total := 0
	for key, bucket := range got {
		for _, ing := range bucket {
			assert.Equal(t, key, ing.Type.Key(), "%s in wrong bucket", ing.ID)
			seen[ing.ID]++
			total++
		}
	}
	assert.Equal(t, len(in), total)
	for _, ing := range in {
		assert.Equal(t, 1, seen[ing.ID], ing.ID)
	}
	assert.Equal(t, []domain.Ingredient{in[0], in[2]}, got["wrap"], "store order kept")
}

func TestGroupByTypeEmpty(t *testing.T) {
	got := GroupByType(nil)
	for _, typ := range domain.IngredientTypes {
		bucket, ok := got[typ.Key()]
		assert.True(t, ok, typ)
		assert.NotNil(t, bucket, typ)
		assert.Empty(t, bucket, typ)
	}
}

func TestDecodeDesign(t *testing.T) {
	v := DesignMessages(validation.New())
	known := map[string]bool{"COTO": true, "TMTO": true}

	res, err := DecodeDesign(v, domain.DesignForm{Name: "  Veggie Taco ", Ingredients: []string{"COTO", "TMTO"}}, known)
	require.NoError(t, err)
	valid, ok := res.(ValidDesign)
	require.True(t, ok)
	assert.Equal(t, "Veggie Taco", valid.Taco.Name)
	assert.Equal(t, []string{"COTO", "TMTO"}, valid.Taco.Ingredients)
	assert.Zero(t, valid.Taco.ID)
}

func TestDecodeDesignInvalid(t *testing.T) {
	v := DesignMessages(validation.New())

	tests := []struct {
		name   string
		form   domain.DesignForm
		field  string
		detail string
	}{
		{"empty name", domain.DesignForm{Name: "", Ingredients: []string{"COTO"}}, "Name", "Name is required"},
		{"short name", domain.DesignForm{Name: "Taco", Ingredients: []string{"COTO"}}, "Name", "Name must be at least 5 characters long"},
		{"no ingredients", domain.DesignForm{Name: "Veggie Taco"}, "Ingredients", "You must choose at least 1 ingredient"},
		{"blank ingredient", domain.DesignForm{Name: "Veggie Taco", Ingredients: []string{""}}, "Ingredients", "You must choose at least 1 ingredient"},
		{"unknown ingredient", domain.DesignForm{Name: "Veggie Taco", Ingredients: []string{"COTO", "XXXX"}}, "Ingredients", "Unknown ingredient XXXX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := DecodeDesign(v, tt.form, map[string]bool{"COTO": true})
			require.NoError(t, err)
			invalid, ok := res.(InvalidDesign)
			require.True(t, ok)
			assert.Equal(t, tt.detail, invalid.Errors.For(tt.field))
			assert.Equal(t, tt.form.Ingredients, invalid.Form.Ingredients)
		})
	}
}

func TestDesignModelHelpers(t *testing.T) {
	m := DesignModel{
		Ingredients: GroupByType([]domain.Ingredient{{ID: "CHED", Type: domain.Cheese}}),
		Design:      domain.DesignForm{Ingredients: []string{"CHED"}},
	}
	assert.Len(t, m.ByType(domain.Cheese), 1)
	assert.Empty(t, m.ByType(domain.Sauce))
	assert.True(t, m.Selected("CHED"))
	assert.False(t, m.Selected("JACK"))
}
