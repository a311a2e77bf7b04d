package models

import (
	"encoding/json"
	"github.com/shopspring/decimal"
)

// 金額欄位為DECIMAL(10,2)，輸出時固定兩位小數
const moneyPlaces = 2

func moneyJSON(d decimal.Decimal) string {
	return d.StringFixed(moneyPlaces)
}

func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		Price string `json:"price"`
	}{
		product: product(p),
		Price:   moneyJSON(p.Price),
	})
}

func (v OrderView) MarshalJSON() ([]byte, error) {
	type orderView OrderView
	return json.Marshal(struct {
		orderView
		TotalPrice string `json:"total_price"`
		ItemPrice  string `json:"item_price"`
	}{
		orderView:  orderView(v),
		TotalPrice: moneyJSON(v.TotalPrice),
		ItemPrice:  moneyJSON(v.ItemPrice),
	})
}
