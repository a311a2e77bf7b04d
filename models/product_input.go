package models

import (
	"ShopAdmin/apperr"
	"encoding/json"
	"github.com/shopspring/decimal"
	"math"
	"strconv"
	"strings"
)

var requiredProductFields = []string{"name", "description", "price", "image_url", "category"}

// ParseNewProduct 將請求資料轉換為新商品，數字需以json.Number解碼
func ParseNewProduct(data map[string]any) (Product, error) {
	for _, field := range requiredProductFields {
		if _, ok := data[field]; !ok {
			return Product{}, apperr.Validation("Missing required fields")
		}
	}

	var (
		product Product
		err     error
	)
	if product.Name, err = coerceText(data, "name", MaxTextLength); err != nil {
		return Product{}, err
	}
	if product.Description, err = coerceText(data, "description", 0); err != nil {
		return Product{}, err
	}
	if product.Price, err = coercePrice(data["price"]); err != nil {
		return Product{}, err
	}
	if product.ImageURL, err = coerceText(data, "image_url", MaxTextLength); err != nil {
		return Product{}, err
	}
	if product.Category, err = coerceText(data, "category", MaxTextLength); err != nil {
		return Product{}, err
	}

	product.Status = StatusInStock
	if _, ok := data["status"]; ok {
		if product.Status, err = coerceText(data, "status", MaxStatusLength); err != nil {
			return Product{}, err
		}
	}
	if raw, ok := data["quantity"]; ok {
		if product.Quantity, err = coerceQuantity(raw); err != nil {
			return Product{}, err
		}
	}

	return product, nil
}

// ParseProductPatch 只轉換有提供的欄位，其餘欄位忽略
func ParseProductPatch(data map[string]any) (ProductPatch, error) {
	var patch ProductPatch

	texts := []struct {
		field  string
		limit  int
		target **string
	}{
		{"name", MaxTextLength, &patch.Name},
		{"description", 0, &patch.Description},
		{"image_url", MaxTextLength, &patch.ImageURL},
		{"category", MaxTextLength, &patch.Category},
		{"status", MaxStatusLength, &patch.Status},
	}
	for _, text := range texts {
		if _, ok := data[text.field]; !ok {
			continue
		}
		value, err := coerceText(data, text.field, text.limit)
		if err != nil {
			return ProductPatch{}, err
		}
		*text.target = &value
	}

	if raw, ok := data["price"]; ok {
		price, err := coercePrice(raw)
		if err != nil {
			return ProductPatch{}, err
		}
		patch.Price = &price
	}
	if raw, ok := data["quantity"]; ok {
		quantity, err := coerceQuantity(raw)
		if err != nil {
			return ProductPatch{}, err
		}
		patch.Quantity = &quantity
	}

	return patch, nil
}

func coerceText(data map[string]any, field string, limit int) (string, error) {
	var text string
	switch v := data[field].(type) {
	case string:
		text = v
	case json.Number:
		text = v.String()
	case bool:
		text = strconv.FormatBool(v)
	default:
		return "", apperr.Validation("Invalid data format: %s must be text", field)
	}
	if limit > 0 {
		text = truncate(text, limit)
	}
	return text, nil
}

func coercePrice(raw any) (decimal.Decimal, error) {
	var text string
	switch v := raw.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = strings.TrimSpace(v)
	default:
		return decimal.Decimal{}, apperr.Validation("Invalid data format: price must be a number")
	}

	price, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, apperr.Validation("Invalid data format: price must be a number")
	}
	return price.Round(2), nil
}

func coerceQuantity(raw any) (int, error) {
	var quantity int64
	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			quantity = n
			break
		}
		f, err := v.Float64()
		if err != nil || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
			return 0, apperr.Validation("Invalid data format: quantity must be an integer")
		}
		quantity = int64(math.Trunc(f))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, apperr.Validation("Invalid data format: quantity must be an integer")
		}
		quantity = n
	default:
		return 0, apperr.Validation("Invalid data format: quantity must be an integer")
	}

	if quantity < 0 {
		return 0, apperr.Validation("Invalid data format: quantity must not be negative")
	}
	if quantity > math.MaxInt32 {
		return 0, apperr.Validation("Invalid data format: quantity is too large")
	}
	return int(quantity), nil
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
