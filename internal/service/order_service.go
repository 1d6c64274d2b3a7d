package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type IOrderService interface {
	// CreateOrder 建立訂單
	//
	// 流程:
	//  1. productIDs為空直接拒絕, 不碰任何外部資源
	//  2. 以目前商品價格建立價格快照, 每個出現的id都是一筆獨立項目
	//  3. 訂單header與所有項目在同一交易內寫入, 任一步失敗全部回滾
	//  4. commit成功後發布order.created事件, 發布失敗不影響訂單結果
	//
	// 重複呼叫會建立多筆獨立訂單, 本操作不具冪等性
	//
	// 錯誤:
	//   - apperr.InvalidArgumentCode 460: 沒有提供商品, 所有商品都不存在,
	//     或嚴格模式下有商品不存在
	//   - apperr.InternalErrorCode 500: 交易失敗
	CreateOrder(ctx context.Context, userID uuid.UUID, productIDs []int64) (*model.OrderModel, error)

	// ListOrdersByUserID 查詢用戶所有訂單, 由新到舊
	ListOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]model.OrderModel, error)
}

type OrderService struct {
	dbDao          db.IStore
	productService IProductService
	orderProducer  producer.IOrderProducer
	// allowPartial為true時, 訂單只包含存在的商品
	// false時任何不存在的商品id都會讓整張訂單失敗
	allowPartial bool
}

// NewOrderService 建立訂單服務, orderProducer可為nil表示不發布事件
func NewOrderService(dbDao db.IStore, productService IProductService, orderProducer producer.IOrderProducer, allowPartial bool) IOrderService {
	return &OrderService{
		dbDao:          dbDao,
		productService: productService,
		orderProducer:  orderProducer,
		allowPartial:   allowPartial,
	}
}

func (o *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, productIDs []int64) (*model.OrderModel, error) {
	if len(productIDs) == 0 {
		return nil, apperr.New(apperr.InvalidArgumentCode, "no products provided")
	}

	// 查價只需要每個id一次
	distinct := make([]int64, 0, len(productIDs))
	seen := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	prices, err := o.productService.LookupPrices(ctx, distinct)
	if err != nil {
		return nil, err
	}

	// 全部商品都無效是客戶端給錯資料, 跟空請求同一類錯誤
	if len(prices) == 0 {
		return nil, apperr.New(apperr.InvalidArgumentCode, "no valid products found")
	}

	if !o.allowPartial && len(prices) < len(distinct) {
		var missing []string
		for _, id := range distinct {
			if _, ok := prices[id]; !ok {
				missing = append(missing, fmt.Sprintf("%d", id))
			}
		}
		return nil, apperr.New(apperr.InvalidArgumentCode,
			fmt.Sprintf("products not found: %s", strings.Join(missing, ", ")))
	}

	order := &model.OrderModel{
		OrderID:   uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	// 項目按原始請求順序建立, 同一商品出現幾次就是幾筆
	for _, id := range productIDs {
		priceCents, ok := prices[id]
		if !ok {
			continue
		}
		order.OrderItems = append(order.OrderItems, model.OrderItemModel{
			OrderID:    order.OrderID,
			ProductID:  id,
			PriceCents: priceCents,
		})
		order.TotalCents += priceCents
	}

	err = o.dbDao.ExecTx(ctx, func(q db.Querier) error {
		if err := q.CreateOrder(ctx, order); err != nil {
			return err
		}
		for i := range order.OrderItems {
			if err := q.CreateOrderItem(ctx, &order.OrderItems[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "order creation failed", err)
	}

	o.publishOrderCreated(ctx, order)

	return order, nil
}

func (o *OrderService) ListOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]model.OrderModel, error) {
	orders, err := o.dbDao.ListOrdersWithItemsByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	return orders, nil
}

// publishOrderCreated 盡力發布事件, 失敗只記log
// 訂單此時已commit, 不能因為事件失敗回報錯誤
func (o *OrderService) publishOrderCreated(ctx context.Context, order *model.OrderModel) {
	if o.orderProducer == nil {
		return
	}
	if err := o.orderProducer.PublishOrderCreated(ctx, order); err != nil {
		log.Error().Err(err).
			Str("order_id", order.OrderID.String()).
			Msg("failed to publish order.created event")
	}
}

var _ IOrderService = (*OrderService)(nil)
