package service

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/rs/zerolog/log"
)

type IProductService interface {
	// CreateProduct 建立商品
	//
	// 錯誤:
	//   - apperr.InvalidArgumentCode 460: title為空或價格為負
	//   - apperr.InternalErrorCode 500: 資料庫錯誤
	CreateProduct(ctx context.Context, arg *model.ProductModel) (*model.ProductModel, error)
	GetProductByID(ctx context.Context, id int64) (*model.ProductModel, error)
	GetAllProducts(ctx context.Context) ([]model.ProductModel, error)
	// UpdateProduct 更新商品並讓價格快取失效
	UpdateProduct(ctx context.Context, arg *model.ProductModel) error
	DeleteProduct(ctx context.Context, id int64) error

	// LookupPrices 批次查詢商品目前價格, 回傳 product id -> 價格(分)
	// 不存在的商品id不會出現在結果內, 不視為錯誤
	// 快取採cache-aside, 快取失效只影響效能不影響正確性
	LookupPrices(ctx context.Context, ids []int64) (map[int64]int64, error)
}

type ProductService struct {
	dbDao      db.IStore
	priceCache redis_repo.IProductPriceRepository
}

// NewProductService 建立商品服務, priceCache可為nil表示不使用快取
func NewProductService(dbDao db.IStore, priceCache redis_repo.IProductPriceRepository) IProductService {
	return &ProductService{
		dbDao:      dbDao,
		priceCache: priceCache,
	}
}

func (p *ProductService) CreateProduct(ctx context.Context, arg *model.ProductModel) (*model.ProductModel, error) {
	if arg.Title == "" {
		return nil, apperr.New(apperr.InvalidArgumentCode, "title is required")
	}
	if arg.PriceCents < 0 {
		return nil, apperr.New(apperr.InvalidArgumentCode, "price cannot be negative")
	}

	product, err := p.dbDao.CreateProduct(ctx, arg)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	return product, nil
}

func (p *ProductService) GetProductByID(ctx context.Context, id int64) (*model.ProductModel, error) {
	product, err := p.dbDao.GetProductByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	return product, nil
}

func (p *ProductService) GetAllProducts(ctx context.Context) ([]model.ProductModel, error) {
	products, err := p.dbDao.GetAllProducts(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	return products, nil
}

func (p *ProductService) UpdateProduct(ctx context.Context, arg *model.ProductModel) error {
	if arg.Title == "" {
		return apperr.New(apperr.InvalidArgumentCode, "title is required")
	}
	if arg.PriceCents < 0 {
		return apperr.New(apperr.InvalidArgumentCode, "price cannot be negative")
	}

	if err := p.dbDao.UpdateProduct(ctx, arg); err != nil {
		if db.IsNoRows(err) {
			return apperr.New(apperr.NotFoundCode, "product not found")
		}
		return apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}

	p.invalidatePrice(ctx, arg.ID)
	return nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := p.dbDao.HardDeleteProduct(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return apperr.New(apperr.NotFoundCode, "product not found")
		}
		return apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}

	p.invalidatePrice(ctx, id)
	return nil
}

func (p *ProductService) LookupPrices(ctx context.Context, ids []int64) (map[int64]int64, error) {
	prices := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	// 先讀快取, miss的再批次查DB
	var missed []int64
	for _, id := range ids {
		if _, ok := prices[id]; ok {
			continue
		}
		if p.priceCache != nil {
			priceCents, err := p.priceCache.GetProductPrice(ctx, id)
			if err == nil {
				prices[id] = priceCents
				continue
			}
			if err != redis_repo.ErrPriceNotCached {
				// 快取故障視同miss, 只記log
				log.Warn().Err(err).Int64("product_id", id).Msg("price cache read failed")
			}
		}
		missed = append(missed, id)
	}

	if len(missed) > 0 {
		rows, err := p.dbDao.GetProductPricesByIDs(ctx, missed)
		if err != nil {
			return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
		}
		for _, row := range rows {
			prices[row.ProductID] = row.PriceCents
			if p.priceCache != nil {
				if err := p.priceCache.SetProductPrice(ctx, row.ProductID, row.PriceCents); err != nil {
					log.Warn().Err(err).Int64("product_id", row.ProductID).Msg("price cache write failed")
				}
			}
		}
	}

	return prices, nil
}

func (p *ProductService) invalidatePrice(ctx context.Context, productID int64) {
	if p.priceCache == nil {
		return
	}
	if err := p.priceCache.DeleteProductPrice(ctx, productID); err != nil {
		log.Warn().Err(err).Int64("product_id", productID).Msg("price cache invalidation failed")
	}
}

var _ IProductService = (*ProductService)(nil)
