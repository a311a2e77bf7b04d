package models

import "github.com/shopspring/decimal"

const (
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	OrderID         uint            `gorm:"column:order_id;primaryKey"`
	UserID          uint            `gorm:"column:user_id"`
	OrderStatus     string          `gorm:"column:order_status"`
	TotalPrice      decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)"`
	DeliveryType    string          `gorm:"column:delivery_type"`
	DeliveryAddress string          `gorm:"column:delivery_address"`
}

func (Order) TableName() string {
	return "Orders"
}

// OrderView 為Orders、Users、Order_Items與Products的扁平化結果，每個訂單商品一列
type OrderView struct {
	OrderID         uint            `gorm:"column:order_id" json:"order_id"`
	CustomerName    string          `gorm:"column:customer_name" json:"customer_name"`
	Email           string          `gorm:"column:email" json:"email"`
	Phone           string          `gorm:"column:phone" json:"phone"`
	OrderStatus     string          `gorm:"column:order_status" json:"order_status"`
	TotalPrice      decimal.Decimal `gorm:"column:total_price" json:"total_price"`
	DeliveryType    string          `gorm:"column:delivery_type" json:"delivery_type"`
	DeliveryAddress string          `gorm:"column:delivery_address" json:"delivery_address"`
	ProductName     string          `gorm:"column:product_name" json:"product_name"`
	Quantity        int             `gorm:"column:quantity" json:"quantity"`
	ItemPrice       decimal.Decimal `gorm:"column:item_price" json:"item_price"`
}
