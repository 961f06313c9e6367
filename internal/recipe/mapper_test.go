package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"purna/internal/wire"
)

func TestFromWire(t *testing.T) {
	t.Run("AllFields", func(t *testing.T) {
		r := FromWire(wire.Recipe{
			ID:              "42",
			Name:            wire.NewText("Lentil Soup"),
			Directions:      wire.Strings{"Rinse lentils", "Simmer 30 minutes"},
			Servings:        wire.NewNumber(6),
			TotalPrice:      wire.NewNumber(9),
			PreparationTime: wire.NewNumber(40),
		})

		assert.Equal(t, "42", r.ID)
		assert.Equal(t, "Lentil Soup", r.Title)
		assert.Equal(t, 6.0, r.Servings)
		assert.Equal(t, 9.0, r.EstCost)
		assert.InDelta(t, 1.5, r.EstCostPerServing, 1e-9)
		assert.Equal(t, 40.0, r.TimeMins)
		assert.Equal(t, []string{"Rinse lentils", "Simmer 30 minutes"}, r.Steps)
		assert.Empty(t, r.Tags)
		assert.Empty(t, r.Ingredients)
		assert.Equal(t, Nutrition{}, r.Nutrition)
	})

	t.Run("Defaults", func(t *testing.T) {
		r := FromWire(wire.Recipe{})

		assert.Equal(t, "", r.ID)
		assert.Equal(t, DefaultTitle, r.Title)
		assert.Equal(t, float64(DefaultServings), r.Servings)
		assert.Equal(t, 0.0, r.EstCost)
		assert.Equal(t, 0.0, r.EstCostPerServing)
		assert.NotNil(t, r.Tags)
		assert.NotNil(t, r.Steps)
		assert.Empty(t, r.Steps)
	})

	t.Run("ZeroServings", func(t *testing.T) {
		r := FromWire(wire.Recipe{Servings: wire.NewNumber(0), TotalPrice: wire.NewNumber(5)})

		assert.Equal(t, 0.0, r.Servings)
		assert.Equal(t, 0.0, r.EstCostPerServing)
	})

	t.Run("EmptyNameIsKept", func(t *testing.T) {
		r := FromWire(wire.Recipe{Name: wire.NewText("")})
		assert.Equal(t, "", r.Title)
	})
}

func TestFromWireList(t *testing.T) {
	recipes := FromWireList([]wire.Recipe{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	assert.Len(t, recipes, 3)
	assert.Equal(t, "a", recipes[0].ID)
	assert.Equal(t, "c", recipes[2].ID)
	assert.NotNil(t, FromWireList(nil))
}

func TestRecipe_Clone(t *testing.T) {
	orig := Recipe{ID: "a", Steps: []string{"one"}}
	cp := orig.Clone()
	cp.Steps[0] = "changed"

	assert.Equal(t, "one", orig.Steps[0])
}
