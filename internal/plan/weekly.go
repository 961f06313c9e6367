package plan

import "purna/internal/recipe"

// WeekDays are assigned to recipes by position.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Meal references a recipe by id.
type Meal struct {
	RecipeID string `json:"recipeId"`
}

// DayPlan is one calendar day of the plan.
type DayPlan struct {
	DayName string `json:"dayName"`
	Meals   []Meal `json:"meals"`
}

// WeeklyPlan is the ordered list of planned days.
type WeeklyPlan struct {
	Days []DayPlan `json:"days"`
	// OverlapScore is only ever set by fixture data; generated plans leave it 0.
	OverlapScore float64 `json:"overlapScore"`
	EstTotalCost float64 `json:"estTotalCost"`
}

// BuildWeeklyPlan assigns one recipe per day, Monday first, in the order
// given. Recipes past the seventh get no day. The total cost covers only the
// recipes that were assigned a day.
func BuildWeeklyPlan(recipes []recipe.Recipe) WeeklyPlan {
	n := len(recipes)
	if n > len(WeekDays) {
		n = len(WeekDays)
	}

	plan := WeeklyPlan{Days: make([]DayPlan, 0, n)}
	for i := 0; i < n; i++ {
		plan.Days = append(plan.Days, DayPlan{
			DayName: WeekDays[i],
			Meals:   []Meal{{RecipeID: recipes[i].ID}},
		})
		plan.EstTotalCost += recipes[i].EstCost
	}
	return plan
}

// Clone returns a deep copy of w.
func (w WeeklyPlan) Clone() WeeklyPlan {
	out := w
	out.Days = make([]DayPlan, len(w.Days))
	for i, d := range w.Days {
		out.Days[i] = DayPlan{DayName: d.DayName, Meals: append([]Meal{}, d.Meals...)}
	}
	return out
}
