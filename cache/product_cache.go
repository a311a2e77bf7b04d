package cache

import (
	"ShopAdmin/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"log"
	"time"
)

const (
	productsKey           = "products"
	productsGenerationKey = "products:generation"
)

// DefaultTTL 快取保存時間，避免漏掉的失效讓舊資料永久存在
const DefaultTTL = 10 * time.Minute

// RedisProductCache 以sorted set快取商品列表，score為product_id
type RedisProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisProductCache(rdb *redis.Client, ttl time.Duration) *RedisProductCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisProductCache{rdb: rdb, ttl: ttl}
}

// Get 讀取快取的商品列表，第二個回傳值為是否命中
func (c *RedisProductCache) Get(ctx context.Context) ([]models.Product, bool, error) {
	members, err := c.rdb.ZRange(ctx, productsKey, 0, -1).Result()
	if err != nil {
		return nil, false, fmt.Errorf("read products cache: %w", err)
	}
	//key不存在時ZRange回傳空列表
	if len(members) == 0 {
		return nil, false, nil
	}

	products := make([]models.Product, 0, len(members))
	for _, member := range members {
		//空列表以單一空字串標記
		if member == "" {
			continue
		}
		var product models.Product
		if err := json.Unmarshal([]byte(member), &product); err != nil {
			return nil, false, fmt.Errorf("decode cached product: %w", err)
		}
		products = append(products, product)
	}

	return products, true, nil
}

// Generation 回傳目前的快取世代，每次Invalidate都會遞增
func (c *RedisProductCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.rdb.Get(ctx, productsGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read products cache generation: %w", err)
	}
	return generation, nil
}

// Set 以資料庫結果覆蓋快取，讀取期間世代已改變時放棄寫入
func (c *RedisProductCache) Set(ctx context.Context, generation int64, products []models.Product) error {
	members := make([]redis.Z, 0, len(products)+1)
	for _, product := range products {
		productJSON, err := json.Marshal(product)
		if err != nil {
			log.Printf("無法序列化商品資料: %v\n", err)
			continue
		}
		members = append(members, redis.Z{
			Score:  float64(product.ProductID),
			Member: productJSON,
		})
	}
	if len(members) == 0 {
		members = append(members, redis.Z{Score: 0, Member: ""})
	}

	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, productsGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, productsKey)
			pipe.ZAdd(ctx, productsKey, members...)
			pipe.Expire(ctx, productsKey, c.ttl)
			return nil
		})
		return err
	}, productsGenerationKey)

	//EXEC前世代被Invalidate修改
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("write products cache: %w", err)
	}
	return nil
}

// Invalidate 在商品新增、修改或刪除後清除快取
func (c *RedisProductCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, productsGenerationKey)
		pipe.Del(ctx, productsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate products cache: %w", err)
	}
	return nil
}
