package handlers

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 查詢訂單列表，每個訂單商品一列
func GetOrderListHandler(c *gin.Context, orders OrderStore) {
	orderList, err := orders.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list orders", err)
		return
	}

	c.JSON(http.StatusOK, orderList)
}

// 更新出貨狀態，只接受shipped或delivered
func UpdateShippingStatusHandler(c *gin.Context, orders OrderStore) {
	data, err := bindJSONObject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	orderID, ok := parseJSONID(data["order_id"])
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order_id",
		})
		return
	}
	newStatus, _ := data["new_status"].(string)

	err = orders.UpdateShippingStatus(c.Request.Context(), orderID, newStatus)
	if err != nil {
		respondError(c, "Failed to update order status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Order %d updated to %s", orderID, newStatus),
	})
}

// 更新訂單狀態，接受任何非空字串
func UpdateOrderStatusHandler(c *gin.Context, orders OrderStore) {
	orderID, ok := parseID(c.Param("orderID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order id",
		})
		return
	}

	data, err := bindJSONObject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	status, _ := data["status"].(string)
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Status is required",
		})
		return
	}

	err = orders.UpdateStatus(c.Request.Context(), orderID, status)
	if err != nil {
		respondError(c, "Failed to update order status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
	})
}
