package plan

// DefaultBudget stands in for a missing or non-positive weekly budget.
const DefaultBudget = 50.0

// BudgetSummary compares the grocery total against the weekly budget.
type BudgetSummary struct {
	GroceryTotal float64 `json:"groceryTotal"`
	Budget       float64 `json:"budget"`
	PercentUsed  float64 `json:"percentUsed"`
	OverBudget   bool    `json:"overBudget"`
}

// Summarize totals every grocery line across all categories. PercentUsed is
// capped at 100; OverBudget reports the uncapped comparison.
func Summarize(ingredients []IngredientAggregate, budget float64) BudgetSummary {
	if budget <= 0 {
		budget = DefaultBudget
	}

	var total float64
	for _, c := range ingredients {
		for _, item := range c.Items {
			total += item.EstPrice
		}
	}

	pct := total / budget * 100
	if pct > 100 {
		pct = 100
	}
	return BudgetSummary{
		GroceryTotal: total,
		Budget:       budget,
		PercentUsed:  pct,
		OverBudget:   total > budget,
	}
}
