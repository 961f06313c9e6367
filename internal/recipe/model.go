package recipe

// DefaultServings is used when the remote record carries no numeric servings.
const DefaultServings = 4

// DefaultTitle is used when the remote record carries no name.
const DefaultTitle = "Recipe"

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  string  `json:"protein"`
	Carbs    string  `json:"carbs"`
	Fat      string  `json:"fat"`
	Sodium   string  `json:"sodium"`
}

// Recipe represents a recipe in a weekly plan.
type Recipe struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Tags              []string     `json:"tags"`
	TimeMins          float64      `json:"timeMins"`
	Servings          float64      `json:"servings"`
	EstCost           float64      `json:"estCost"`
	EstCostPerServing float64      `json:"estCostPerServing"`
	Ingredients       []Ingredient `json:"ingredients"`
	Steps             []string     `json:"steps"`
	Nutrition         Nutrition    `json:"nutrition"`
	WhySelected       string       `json:"whySelected"`
}

// Clone returns a deep copy of r.
func (r Recipe) Clone() Recipe {
	out := r
	out.Tags = append([]string{}, r.Tags...)
	out.Ingredients = append([]Ingredient{}, r.Ingredients...)
	out.Steps = append([]string{}, r.Steps...)
	return out
}
