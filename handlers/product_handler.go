package handlers

import (
	"ShopAdmin/models"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// 查詢商品列表，啟用快取時優先從Redis讀取
func GetProductListHandler(c *gin.Context, products ProductStore, cache ProductCache) {
	ctx := c.Request.Context()

	fill := false
	var generation int64
	if cache != nil {
		cached, hit, err := cache.Get(ctx)
		if err != nil {
			log.Printf("無法從Redis讀取商品列表: %v\n", err)
		} else if hit {
			c.JSON(http.StatusOK, cached)
			return
		}

		generation, err = cache.Generation(ctx)
		if err != nil {
			log.Printf("無法讀取商品快取世代: %v\n", err)
		} else {
			fill = true
		}
	}

	productList, err := products.List(ctx)
	if err != nil {
		respondError(c, "Failed to list products", err)
		return
	}

	if fill {
		if err := cache.Set(ctx, generation, productList); err != nil {
			log.Printf("無法將商品列表加入Redis: %v\n", err)
		}
	}

	c.JSON(http.StatusOK, productList)
}

// 新增商品
func CreateProductHandler(c *gin.Context, products ProductStore, cache ProductCache) {
	data, err := bindJSONObject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	product, err := models.ParseNewProduct(data)
	if err != nil {
		respondError(c, "Invalid product", err)
		return
	}

	productID, err := products.Create(c.Request.Context(), product)
	if err != nil {
		respondError(c, "Failed to add product", err)
		return
	}
	invalidateProducts(c, cache)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Product added successfully",
		"product_id": productID,
	})
}

// 修改商品，只更新有提供的欄位
func UpdateProductHandler(c *gin.Context, products ProductStore, cache ProductCache) {
	productID, ok := parseID(c.Param("productID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product id",
		})
		return
	}

	data, err := bindJSONObject(c)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No data provided",
		})
		return
	}

	patch, err := models.ParseProductPatch(data)
	if err != nil {
		respondError(c, "Invalid product", err)
		return
	}

	err = products.Update(c.Request.Context(), productID, patch)
	if err != nil {
		respondError(c, "Failed to update product", err)
		return
	}
	invalidateProducts(c, cache)

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
	})
}

// 刪除商品，不檢查是否仍有訂單商品參照
func DeleteProductHandler(c *gin.Context, products ProductStore, cache ProductCache) {
	productID, ok := parseID(c.Param("productID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product id",
		})
		return
	}

	err := products.Delete(c.Request.Context(), productID)
	if err != nil {
		respondError(c, "Failed to delete product", err)
		return
	}
	invalidateProducts(c, cache)

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

func invalidateProducts(c *gin.Context, cache ProductCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(c.Request.Context()); err != nil {
		log.Printf("無法將商品列表從Redis刪除: %v\n", err)
	}
}
