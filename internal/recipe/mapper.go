package recipe

import "purna/internal/wire"

// FromWire converts a remote recipe record. It never fails: missing or
// mistyped fields fall back to their defaults. Tags, ingredients and nutrition
// are not supplied by the remote service and are left empty.
func FromWire(r wire.Recipe) Recipe {
	servings := r.Servings.Or(DefaultServings)
	estCost := r.TotalPrice.Or(0)

	perServing := 0.0
	if servings > 0 {
		perServing = estCost / servings
	}

	steps := []string{}
	if r.Directions != nil {
		steps = append(steps, r.Directions...)
	}

	return Recipe{
		ID:                string(r.ID),
		Title:             r.Name.Or(DefaultTitle),
		Tags:              []string{},
		TimeMins:          r.PreparationTime.Or(0),
		Servings:          servings,
		EstCost:           estCost,
		EstCostPerServing: perServing,
		Ingredients:       []Ingredient{},
		Steps:             steps,
		Nutrition:         Nutrition{},
		WhySelected:       "",
	}
}

// FromWireList converts remote recipes, preserving order.
func FromWireList(records []wire.Recipe) []Recipe {
	recipes := make([]Recipe, 0, len(records))
	for _, r := range records {
		recipes = append(recipes, FromWire(r))
	}
	return recipes
}
