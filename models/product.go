package models

import "github.com/shopspring/decimal"

const (
	StatusInStock    = "in_stock"
	StatusOutOfStock = "out_of_stock"
)

// 欄位長度上限，超過時靜默截斷
const (
	MaxTextLength   = 255
	MaxStatusLength = 50
)

type Product struct {
	ProductID   uint            `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name        string          `gorm:"column:name;size:255;not null" json:"name"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2)" json:"price"`
	ImageURL    string          `gorm:"column:image_url;size:255" json:"image_url"`
	Category    string          `gorm:"column:category;size:255" json:"category"`
	Quantity    int             `gorm:"column:quantity" json:"quantity"`
	Status      string          `gorm:"column:status;size:50" json:"status"`
}

func (Product) TableName() string {
	return "Products"
}

// ProductPatch 為部分更新，nil代表未提供
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	Category    *string
	Quantity    *int
	Status      *string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.Price == nil &&
		p.ImageURL == nil &&
		p.Category == nil &&
		p.Quantity == nil &&
		p.Status == nil
}
