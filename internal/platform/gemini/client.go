package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"purna/internal/wire"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("empty response from Gemini")

const promptTemplate = `You are a meal planner for a household on a tight grocery budget.
Household details: %s.
Return a single, clean JSON object and nothing else, with these keys:
'recipes' (array of up to 7 objects with 'id' (number), 'name' (string), 'servings' (number), 'totalPrice' (number, USD for the whole recipe), 'preparationTime' (number, minutes), 'directions' (array of strings)),
'groceryList' (array of objects with 'ingredient' (string), 'quantity' (string such as "2 cups"), 'pricePerUnit' (number), 'totalPrice' (number)),
'reasoning' (string explaining how the plan fits the budget and restrictions),
'overlappingIngredients' (array of ingredient names shared by several recipes).
Prefer recipes that share ingredients. The JSON response should not contain any markdown formatting.`

// generator returns the text the model produced for a prompt.
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

type genaiGenerator struct {
	model *genai.GenerativeModel
}

func (g genaiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

// Client asks Gemini for a plan shaped like the remote /recipes response.
type Client struct {
	gen    generator
	closer func() error
}

// NewClient creates a new Gemini client. An empty model name selects DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	m := client.GenerativeModel(model)
	m.ResponseMIMEType = "application/json"
	return &Client{gen: genaiGenerator{model: m}, closer: client.Close}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// FetchRecipes generates recipes and a grocery list for the household
// described by userContext.
func (c *Client) FetchRecipes(ctx context.Context, userContext string) (*wire.RecipesResponse, error) {
	text, err := c.gen.generate(ctx, fmt.Sprintf(promptTemplate, userContext))
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipes: %w", err)
	}

	cleanJSON, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var resp wire.RecipesResponse
	if err := json.Unmarshal([]byte(cleanJSON), &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipes JSON: %w", err)
	}
	log.Printf("Gemini returned %d recipes", len(resp.Recipes))
	return &resp, nil
}

// extractJSON returns the outermost {...} in text, which may be wrapped in
// markdown fences or prose.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start > end {
		return "", fmt.Errorf("could not find JSON object in response: %s", text)
	}
	return text[start : end+1], nil
}
