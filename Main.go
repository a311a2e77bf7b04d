package main

import (
	"ShopAdmin/cache"
	"ShopAdmin/config"
	"ShopAdmin/handlers"
	"ShopAdmin/repository"
	"ShopAdmin/routers"
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("無法讀取設定檔: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	db, err := config.SetupMySQLConnection(cfg.Database)
	if err != nil {
		log.Fatalf("無法建立資料庫連線: %v", err)
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	rdb, err := config.SetupRedisConnection(cfg.Redis)
	if err != nil {
		log.Fatalf("無法連接到Redis: %v", err)
	}

	//未啟用Redis時保持nil介面
	var productCache handlers.ProductCache
	if rdb != nil {
		defer rdb.Close()
		productCache = cache.NewRedisProductCache(rdb, cfg.Redis.CacheTTL)
		log.Printf("product list cache enabled (%s)", cfg.Redis.Addr)
	}

	router := routers.SetupRouters(routers.Dependencies{
		Products:       repository.NewProductRepository(db),
		Admins:         repository.NewAdminRepository(db),
		Orders:         repository.NewOrderRepository(db),
		ProductCache:   productCache,
		ExposeErrors:   cfg.Server.ExposeErrors,
		TrustedProxies: cfg.Server.TrustedProxies,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}
