package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Number
	}{
		{"integer", `12`, NewNumber(12)},
		{"decimal", `-3.25`, NewNumber(-3.25)},
		{"null", `null`, Number{}},
		{"string", `"12"`, Number{}},
		{"bool", `true`, Number{}},
		{"object", `{"v":1}`, Number{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
		D ID `json:"d"`
		E ID `json:"e"`
	}
	body := `{"a":"r-1","b":42,"c":1.5,"d":null,"e":[1]}`
	require.NoError(t, json.Unmarshal([]byte(body), &v))

	assert.Equal(t, ID("r-1"), v.A)
	assert.Equal(t, ID("42"), v.B)
	assert.Equal(t, ID("1.5"), v.C)
	assert.Equal(t, ID(""), v.D)
	assert.Equal(t, ID(""), v.E)
}

func TestQuantity_UnmarshalJSON(t *testing.T) {
	var items []GroceryItem
	body := `[{"quantity":"2 cups"},{"quantity":3.5},{"quantity":null},{},{"quantity":false}]`
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 5)

	assert.Equal(t, TextQuantity("2 cups"), items[0].Quantity)
	assert.Equal(t, NumberQuantity(3.5), items[1].Quantity)
	assert.Equal(t, QuantityAbsent, items[2].Quantity.Kind)
	assert.Equal(t, QuantityAbsent, items[3].Quantity.Kind)
	assert.Equal(t, QuantityAbsent, items[4].Quantity.Kind)
}

func TestStrings_UnmarshalJSON(t *testing.T) {
	var s Strings
	require.NoError(t, json.Unmarshal([]byte(`["a", 1, "b", null]`), &s))
	assert.Equal(t, Strings{"a", "b"}, s)

	require.NoError(t, json.Unmarshal([]byte(`"not a list"`), &s))
	assert.Nil(t, s)
}

func TestRecipesResponse_UnmarshalJSON(t *testing.T) {
	t.Run("WellFormed", func(t *testing.T) {
		body := `{
			"recipes": [
				{"id": 7, "name": "Bean Bowl", "directions": ["Rinse", "Simmer"], "servings": 4, "totalPrice": 6.4, "preparationTime": 25}
			],
			"groceryList": [
				{"ingredient": "Black beans", "quantity": "2 cans", "pricePerUnit": 0.9, "totalPrice": 1.8}
			],
			"reasoning": "Cheap and filling",
			"overlappingIngredients": ["Onion"]
		}`
		var resp RecipesResponse
		require.NoError(t, json.Unmarshal([]byte(body), &resp))

		require.Len(t, resp.Recipes, 1)
		assert.Equal(t, ID("7"), resp.Recipes[0].ID)
		assert.Equal(t, "Bean Bowl", resp.Recipes[0].Name.Value)
		assert.Equal(t, Strings{"Rinse", "Simmer"}, resp.Recipes[0].Directions)
		assert.Equal(t, NewNumber(6.4), resp.Recipes[0].TotalPrice)

		require.Len(t, resp.GroceryList, 1)
		assert.Equal(t, TextQuantity("2 cans"), resp.GroceryList[0].Quantity)
		assert.Equal(t, "Cheap and filling", resp.Reasoning.Value)
		assert.Equal(t, Strings{"Onion"}, resp.OverlappingIngredients)
	})

	t.Run("WrongKinds", func(t *testing.T) {
		body := `{"recipes": "none", "groceryList": [null, 3, {"ingredient": 5}], "reasoning": 12, "overlappingIngredients": {}}`
		var resp RecipesResponse
		require.NoError(t, json.Unmarshal([]byte(body), &resp))

		assert.Nil(t, resp.Recipes)
		require.Len(t, resp.GroceryList, 1)
		assert.False(t, resp.GroceryList[0].Ingredient.Valid)
		assert.False(t, resp.Reasoning.Valid)
		assert.Nil(t, resp.OverlappingIngredients)
	})

	t.Run("NotAnObject", func(t *testing.T) {
		var resp RecipesResponse
		require.NoError(t, json.Unmarshal([]byte(`[1, 2, 3]`), &resp))
		assert.Equal(t, RecipesResponse{}, resp)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		var resp RecipesResponse
		assert.Error(t, json.Unmarshal([]byte(`{"recipes": [`), &resp))
	})
}

func TestDecodeSnapStores(t *testing.T) {
	t.Run("KeepsObjectsInOrder", func(t *testing.T) {
		body := `[
			{"record_id": "b", "store_name": "Corner Mart", "distance_miles": 3.1},
			null,
			{"record_id": 9, "store_name": "Food Depot", "distance_miles": "far", "latitude": 33.7, "longitude": -84.1}
		]`
		stores, err := DecodeSnapStores([]byte(body))
		require.NoError(t, err)
		require.Len(t, stores, 2)

		assert.Equal(t, ID("b"), stores[0].RecordID)
		assert.Equal(t, NewNumber(3.1), stores[0].DistanceMiles)
		assert.Equal(t, ID("9"), stores[1].RecordID)
		assert.False(t, stores[1].DistanceMiles.Valid)
		assert.Equal(t, NewNumber(33.7), stores[1].Latitude)
	})

	t.Run("NonArrayIsEmpty", func(t *testing.T) {
		stores, err := DecodeSnapStores([]byte(`{"detail": "no stores"}`))
		require.NoError(t, err)
		assert.Empty(t, stores)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := DecodeSnapStores([]byte(`<html>`))
		assert.Error(t, err)
	})
}
