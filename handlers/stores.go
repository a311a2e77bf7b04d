package handlers

import (
	"ShopAdmin/models"
	"context"
)

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product models.Product) (uint, error)
	Update(ctx context.Context, productID uint, patch models.ProductPatch) error
	Delete(ctx context.Context, productID uint) error
}

type AdminStore interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) error
}

type OrderStore interface {
	List(ctx context.Context) ([]models.OrderView, error)
	UpdateShippingStatus(ctx context.Context, orderID uint, status string) error
	UpdateStatus(ctx context.Context, orderID uint, status string) error
}

// ProductCache 為可選的商品列表快取，nil代表停用
type ProductCache interface {
	Get(ctx context.Context) ([]models.Product, bool, error)
	// Generation 需在讀取資料庫前取得，Set時世代已改變則不寫入
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, generation int64, products []models.Product) error
	Invalidate(ctx context.Context) error
}
