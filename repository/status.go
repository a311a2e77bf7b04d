package repository

import "ShopAdmin/models"

// DeriveStatus 依新的庫存數量決定是否強制變更商品狀態
//
// 庫存歸零時一律為out_of_stock；原本out_of_stock且補貨後改回in_stock。
// 其他情況回傳false，表示沿用請求中的狀態(若有)。
func DeriveStatus(currentStatus string, quantity int) (string, bool) {
	switch {
	case quantity == 0:
		return models.StatusOutOfStock, true
	case currentStatus == models.StatusOutOfStock && quantity > 0:
		return models.StatusInStock, true
	default:
		return "", false
	}
}
