package redis_repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// IProductPriceRepository 商品價格快取
// 價格以分(int64)儲存, 僅作為catalog讀取路徑的cache-aside層
// 快取內容反映"讀取當下"的價格, 不提供跨交易的一致性保證
type IProductPriceRepository interface {
	// GetProductPrice 取得快取價格
	//
	// 錯誤:
	//   - ErrPriceNotCached: 快取內沒有該商品
	GetProductPrice(ctx context.Context, productID int64) (int64, error)

	// SetProductPrice 寫入快取價格
	SetProductPrice(ctx context.Context, productID int64, priceCents int64) error

	// DeleteProductPrice 刪除快取價格, 商品更新或刪除時呼叫
	DeleteProductPrice(ctx context.Context, productID int64) error
}

var ErrPriceNotCached = errors.New("product price not cached")

const priceCacheTTL = 5 * time.Minute

type ProductPriceRepo struct {
	priceCache *redis.Client
}

func NewProductPriceRepo(priceCache *redis.Client) *ProductPriceRepo {
	return &ProductPriceRepo{priceCache: priceCache}
}

func generateProductPriceKey(productID int64) string {
	return fmt.Sprintf("product:%d:price_cents", productID)
}

func (s *ProductPriceRepo) GetProductPrice(ctx context.Context, productID int64) (int64, error) {
	redisKey := generateProductPriceKey(productID)
	price, err := s.priceCache.Get(ctx, redisKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrPriceNotCached
		}
		return 0, err
	}

	priceInt, err := strconv.ParseInt(price, 10, 64)
	if err != nil {
		return 0, err
	}

	return priceInt, nil
}

func (s *ProductPriceRepo) SetProductPrice(ctx context.Context, productID int64, priceCents int64) error {
	redisKey := generateProductPriceKey(productID)
	return s.priceCache.Set(ctx, redisKey, priceCents, priceCacheTTL).Err()
}

func (s *ProductPriceRepo) DeleteProductPrice(ctx context.Context, productID int64) error {
	redisKey := generateProductPriceKey(productID)
	return s.priceCache.Del(ctx, redisKey).Err()
}

var _ IProductPriceRepository = (*ProductPriceRepo)(nil)
