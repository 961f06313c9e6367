package wire

import "encoding/json"

// RecipesRequest is the body of POST /recipes.
type RecipesRequest struct {
	UserContext string `json:"user_context"`
}

// Recipe is a recipe record as returned by the remote service.
type Recipe struct {
	ID              ID      `json:"id"`
	URL             Text    `json:"url"`
	Name            Text    `json:"name"`
	Directions      Strings `json:"directions"`
	Servings        Number  `json:"servings"`
	TotalPrice      Number  `json:"totalPrice"`
	PreparationTime Number  `json:"preparationTime"`
}

// GroceryItem is one row of the remote grocery list.
type GroceryItem struct {
	Ingredient   Text     `json:"ingredient"`
	Quantity     Quantity `json:"quantity"`
	PricePerUnit Number   `json:"pricePerUnit"`
	TotalPrice   Number   `json:"totalPrice"`
}

// RecipesResponse is the payload of POST /recipes.
type RecipesResponse struct {
	Recipes                []Recipe      `json:"recipes"`
	GroceryList            []GroceryItem `json:"groceryList"`
	Reasoning              Text          `json:"reasoning"`
	OverlappingIngredients Strings       `json:"overlappingIngredients"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for RecipesResponse.
// A body that is not an object decodes to the zero response, and list fields
// that are not arrays decode to nil.
func (r *RecipesResponse) UnmarshalJSON(data []byte) error {
	*r = RecipesResponse{}
	var fields map[string]json.RawMessage
	if kind(data) != '{' || json.Unmarshal(data, &fields) != nil {
		return nil
	}

	r.Recipes = objects[Recipe](fields["recipes"])
	r.GroceryList = objects[GroceryItem](fields["groceryList"])
	if raw, ok := fields["reasoning"]; ok {
		_ = r.Reasoning.UnmarshalJSON(raw)
	}
	if raw, ok := fields["overlappingIngredients"]; ok {
		_ = r.OverlappingIngredients.UnmarshalJSON(raw)
	}
	return nil
}
