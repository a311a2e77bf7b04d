package repository

import (
	"ShopAdmin/apperr"
	"ShopAdmin/models"
	"context"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// 查詢所有商品
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, apperr.Storage("list products", err)
	}
	return products, nil
}

// 新增商品並回傳product_id，不依庫存推導狀態
func (r *ProductRepository) Create(ctx context.Context, product models.Product) (uint, error) {
	product.ProductID = 0
	err := r.db.WithContext(ctx).Create(&product).Error
	if err != nil {
		return 0, apperr.Storage("create product", err)
	}
	return product.ProductID, nil
}

// 部分更新商品，有提供quantity時會先讀取目前狀態來推導新狀態
func (r *ProductRepository) Update(ctx context.Context, productID uint, patch models.ProductPatch) error {
	if patch.IsEmpty() {
		return apperr.Validation("No valid fields to update")
	}

	db := r.db.WithContext(ctx)
	update := newProductUpdate()

	if patch.Name != nil {
		update.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		update.Set("description", *patch.Description)
	}
	if patch.Price != nil {
		update.Set("price", *patch.Price)
	}
	if patch.ImageURL != nil {
		update.Set("image_url", *patch.ImageURL)
	}
	if patch.Category != nil {
		update.Set("category", *patch.Category)
	}

	if patch.Quantity != nil {
		update.Set("quantity", *patch.Quantity)

		var statuses []string
		err := db.
			Model(&models.Product{}).
			Where("product_id = ?", productID).
			Limit(1).
			Pluck("status", &statuses).
			Error
		if err != nil {
			return apperr.Storage("read product status", err)
		}

		//找不到商品時不推導，交由下方UPDATE回報不存在
		if len(statuses) > 0 {
			if status, derived := DeriveStatus(statuses[0], *patch.Quantity); derived {
				update.Set("status", status)
			}
		}
	}

	//推導出的狀態優先於請求中的狀態
	if patch.Status != nil {
		update.Set("status", *patch.Status)
	}

	result := db.
		Model(&models.Product{}).
		Where("product_id = ?", productID).
		Updates(update.Assignments())
	if result.Error != nil {
		return apperr.Storage("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Product not found")
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.Product{})
	if result.Error != nil {
		return apperr.Storage("delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Product not found")
	}
	return nil
}
