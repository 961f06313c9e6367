package plan

import (
	"context"
	"log"
	"time"

	"purna/internal/wire"
)

// Pipeline is the name the recipe pipeline reports metrics under.
const Pipeline = "plan"

// RecipeSource returns candidate recipes and a grocery list for a query.
type RecipeSource interface {
	FetchRecipes(ctx context.Context, userContext string) (*wire.RecipesResponse, error)
}

// Observer receives the outcome of each pipeline run.
type Observer interface {
	ObservePipeline(pipeline, outcome string, elapsed time.Duration)
}

// Planner runs preferences through the recipe source and maps the result.
type Planner struct {
	source   RecipeSource
	observer Observer
}

// NewPlanner creates a new Planner. observer may be nil.
func NewPlanner(source RecipeSource, observer Observer) *Planner {
	return &Planner{source: source, observer: observer}
}

// Generate builds the query for p, fetches recipes and maps them into plan
// data. The only failure is the fetch itself, returned as the source reported
// it so callers can show the message verbatim; mapping never fails.
func (pl *Planner) Generate(ctx context.Context, p Preferences) (Data, error) {
	start := time.Now()
	userContext := BuildUserContext(p)

	log.Printf("Fetching recipes for family of %d, budget $%.2f", p.FamilySize, p.WeeklyBudget)
	resp, err := pl.source.FetchRecipes(ctx, userContext)
	if err != nil {
		pl.observe("error", start)
		log.Printf("Recipe fetch failed: %v", err)
		return Data{}, err
	}

	data := MapResponse(resp)
	pl.observe("ok", start)
	log.Printf("Mapped %d recipes into a %d-day plan", len(data.Recipes), len(data.WeeklyPlan.Days))
	return data, nil
}

func (pl *Planner) observe(outcome string, start time.Time) {
	if pl.observer != nil {
		pl.observer.ObservePipeline(Pipeline, outcome, time.Since(start))
	}
}
