package routers

import (
	"ShopAdmin/handlers"
	"ShopAdmin/middleware"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type Dependencies struct {
	Products handlers.ProductStore
	Admins   handlers.AdminStore
	Orders   handlers.OrderStore
	// 為nil時不使用快取
	ProductCache handlers.ProductCache
	ExposeErrors bool
	// 信任的反向代理，空白代表不信任任何代理
	TrustedProxies []string
}

func SetupRouters(deps Dependencies) *gin.Engine {
	//建立Gin路由器
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(
		middleware.CORSMiddleware(),
		middleware.RequestIDMiddleware(),
		middleware.ErrorPolicyMiddleware(deps.ExposeErrors),
	)
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		log.Printf("無效的trusted proxies %v，改為不信任任何代理: %v\n", deps.TrustedProxies, err)
		_ = router.SetTrustedProxies(nil)
	}

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	//商品
	router.GET("/products", func(context *gin.Context) {
		handlers.GetProductListHandler(context, deps.Products, deps.ProductCache)
	})
	router.POST("/products", func(context *gin.Context) {
		handlers.CreateProductHandler(context, deps.Products, deps.ProductCache)
	})
	router.PUT("/products/:productID", func(context *gin.Context) {
		handlers.UpdateProductHandler(context, deps.Products, deps.ProductCache)
	})
	router.DELETE("/products/:productID", func(context *gin.Context) {
		handlers.DeleteProductHandler(context, deps.Products, deps.ProductCache)
	})

	//管理員
	router.POST("/register-admin", func(context *gin.Context) {
		handlers.RegisterAdminHandler(context, deps.Admins)
	})
	router.POST("/login-admin", func(context *gin.Context) {
		handlers.LoginAdminHandler(context, deps.Admins)
	})

	//訂單
	router.GET("/orders", func(context *gin.Context) {
		handlers.GetOrderListHandler(context, deps.Orders)
	})
	router.PUT("/update_status", func(context *gin.Context) {
		handlers.UpdateShippingStatusHandler(context, deps.Orders)
	})
	router.PUT("/orders/:orderID/status", func(context *gin.Context) {
		handlers.UpdateOrderStatusHandler(context, deps.Orders)
	})

	return router
}
