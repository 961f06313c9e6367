package plan

import "purna/internal/wire"

const (
	// GroceryCategory holds every item of a generated grocery list.
	GroceryCategory = "Grocery"
	// DefaultUnit is used when a quantity carries no unit text.
	DefaultUnit = "unit"
)

// AggregateItem is one line of the grocery list.
type AggregateItem struct {
	Name     string  `json:"name"`
	TotalQty float64 `json:"totalQty"`
	Unit     string  `json:"unit"`
	EstPrice float64 `json:"estPrice"`
}

// IngredientAggregate groups grocery lines under a category.
type IngredientAggregate struct {
	Category string          `json:"category"`
	Items    []AggregateItem `json:"items"`
}

// AggregateGrocery turns the remote grocery list into a single "Grocery"
// category. An empty list produces no categories at all.
func AggregateGrocery(items []wire.GroceryItem) []IngredientAggregate {
	if len(items) == 0 {
		return []IngredientAggregate{}
	}

	list := make([]AggregateItem, 0, len(items))
	for _, item := range items {
		q := ParseQuantity(item.Quantity)
		unit := q.Unit
		if unit == "" {
			unit = DefaultUnit
		}
		list = append(list, AggregateItem{
			Name:     item.Ingredient.Or(""),
			TotalQty: q.Value,
			Unit:     unit,
			EstPrice: item.TotalPrice.Or(0),
		})
	}
	return []IngredientAggregate{{Category: GroceryCategory, Items: list}}
}

func cloneAggregates(in []IngredientAggregate) []IngredientAggregate {
	out := make([]IngredientAggregate, len(in))
	for i, c := range in {
		out[i] = IngredientAggregate{Category: c.Category, Items: append([]AggregateItem{}, c.Items...)}
	}
	return out
}
