package repository

import (
	"ShopAdmin/apperr"
	"ShopAdmin/models"
	"context"
	"gorm.io/gorm"
)

// 出貨狀態更新只接受這兩種狀態
var shippingStatuses = map[string]bool{
	models.OrderStatusShipped:   true,
	models.OrderStatusDelivered: true,
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List 回傳訂單與訂單商品的扁平化結果，每個訂單商品一列
func (r *OrderRepository) List(ctx context.Context) ([]models.OrderView, error) {
	orders := []models.OrderView{}
	err := r.db.WithContext(ctx).
		Table("Orders").
		Select(`Orders.order_id,
			Users.name AS customer_name,
			Users.email,
			Users.phone,
			Orders.order_status,
			Orders.total_price,
			Orders.delivery_type,
			Orders.delivery_address,
			Products.name AS product_name,
			Order_Items.quantity,
			Order_Items.price AS item_price`).
		Joins("JOIN Users ON Orders.user_id = Users.user_id").
		Joins("JOIN Order_Items ON Orders.order_id = Order_Items.order_id").
		Joins("JOIN Products ON Order_Items.product_id = Products.product_id").
		Scan(&orders).
		Error
	if err != nil {
		return nil, apperr.Storage("list orders", err)
	}
	return orders, nil
}

func IsShippingStatus(status string) bool {
	return shippingStatuses[status]
}

// UpdateShippingStatus 只允許更新為shipped或delivered
func (r *OrderRepository) UpdateShippingStatus(ctx context.Context, orderID uint, status string) error {
	if !IsShippingStatus(status) {
		return apperr.Validation("Invalid status. Allowed: 'shipped', 'delivered'")
	}
	return r.setStatus(ctx, orderID, status)
}

// UpdateStatus 接受任何非空狀態
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	if status == "" {
		return apperr.Validation("Status is required")
	}
	return r.setStatus(ctx, orderID, status)
}

func (r *OrderRepository) setStatus(ctx context.Context, orderID uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("order_status", status)
	if result.Error != nil {
		return apperr.Storage("update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Order not found")
	}
	return nil
}
