package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductJSON_PriceHasTwoPlaces(t *testing.T) {
	product := Product{
		ProductID: 1,
		Name:      "Pen",
		Price:     decimal.RequireFromString("1.50"),
		Quantity:  3,
		Status:    StatusInStock,
	}

	data, err := json.Marshal(product)
	require.NoError(t, err)
	assert.JSONEq(t, `{"product_id":1,"name":"Pen","description":"","price":"1.50","image_url":"","category":"","quantity":3,"status":"in_stock"}`, string(data))

	var decoded Product
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, product.Price.Equal(decoded.Price))
	assert.Equal(t, product.Name, decoded.Name)

	data, err = json.Marshal(Product{Price: decimal.NewFromInt(4)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":"4.00"`)
}

func TestOrderViewJSON_PricesHaveTwoPlaces(t *testing.T) {
	data, err := json.Marshal([]OrderView{{
		OrderID:    7,
		TotalPrice: decimal.RequireFromString("30.5"),
		ItemPrice:  decimal.NewFromInt(10),
		Quantity:   3,
	}})
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "30.50", rows[0]["total_price"])
	assert.Equal(t, "10.00", rows[0]["item_price"])
	assert.Equal(t, float64(7), rows[0]["order_id"])
	_, hasProductName := rows[0]["product_name"]
	assert.True(t, hasProductName)
}
