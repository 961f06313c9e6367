package plan

import (
	"purna/internal/recipe"
	"purna/internal/wire"
)

// Data is everything a recipe response contributes to a session. It is set
// or cleared as a whole.
type Data struct {
	Recipes                []recipe.Recipe       `json:"recipes"`
	WeeklyPlan             WeeklyPlan            `json:"weeklyPlan"`
	Ingredients            []IngredientAggregate `json:"ingredients"`
	Reasoning              string                `json:"reasoning"`
	OverlappingIngredients []string              `json:"overlappingIngredients"`
}

// MapResponse converts a remote recipe response into plan data. It is total:
// a nil or malformed response maps to an empty plan.
func MapResponse(resp *wire.RecipesResponse) Data {
	if resp == nil {
		resp = &wire.RecipesResponse{}
	}

	recipes := recipe.FromWireList(resp.Recipes)
	overlap := []string{}
	if resp.OverlappingIngredients != nil {
		overlap = append(overlap, resp.OverlappingIngredients...)
	}

	return Data{
		Recipes:                recipes,
		WeeklyPlan:             BuildWeeklyPlan(recipes),
		Ingredients:            AggregateGrocery(resp.GroceryList),
		Reasoning:              resp.Reasoning.Or(""),
		OverlappingIngredients: overlap,
	}
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	out := d
	out.Recipes = make([]recipe.Recipe, len(d.Recipes))
	for i, r := range d.Recipes {
		out.Recipes[i] = r.Clone()
	}
	out.WeeklyPlan = d.WeeklyPlan.Clone()
	out.Ingredients = cloneAggregates(d.Ingredients)
	out.OverlappingIngredients = append([]string{}, d.OverlappingIngredients...)
	return out
}
