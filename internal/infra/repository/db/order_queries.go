package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/google/uuid"
)

// Create - 創建訂單主檔
func (q *Queries) CreateOrder(ctx context.Context, order *model.OrderModel) error {
	const stmt = `
INSERT INTO orders (id, user_id, total_cents, created_at)
VALUES ($1, $2, $3, $4)`

	_, err := q.db.Exec(ctx, stmt, order.OrderID, order.UserID, order.TotalCents, order.CreatedAt)
	return err
}

// Create - 創建訂單項目, 價格為下單當下的快照
func (q *Queries) CreateOrderItem(ctx context.Context, item *model.OrderItemModel) error {
	const stmt = `
INSERT INTO order_items (order_id, product_id, price_cents)
VALUES ($1, $2, $3)`

	_, err := q.db.Exec(ctx, stmt, item.OrderID, item.ProductID, item.PriceCents)
	return err
}

// ListOrdersWithItemsByUserID 一次join查出用戶所有訂單與項目
// 在應用端分組, 訂單按建立時間由新到舊, 項目按插入順序
func (q *Queries) ListOrdersWithItemsByUserID(ctx context.Context, userID uuid.UUID) ([]model.OrderModel, error) {
	const query = `
SELECT o.id, o.user_id, o.total_cents, o.created_at, i.product_id, i.price_cents
FROM orders o
JOIN order_items i ON i.order_id = o.id
WHERE o.user_id = $1
ORDER BY o.created_at DESC, o.id, i.id`

	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.OrderModel
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			orderID uuid.UUID
			order   model.OrderModel
			item    model.OrderItemModel
		)
		if err := rows.Scan(
			&orderID, &order.UserID, &order.TotalCents, &order.CreatedAt,
			&item.ProductID, &item.PriceCents,
		); err != nil {
			return nil, err
		}

		item.OrderID = orderID
		i, ok := index[orderID]
		if !ok {
			order.OrderID = orderID
			orders = append(orders, order)
			i = len(orders) - 1
			index[orderID] = i
		}
		orders[i].OrderItems = append(orders[i].OrderItems, item)
	}
	return orders, rows.Err()
}
