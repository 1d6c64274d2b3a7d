package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel 訂單, 建立後不可變更
// TotalCents 恆等於所有OrderItems的PriceCents總和
type OrderModel struct {
	OrderID    uuid.UUID
	UserID     uuid.UUID
	TotalCents int64
	OrderItems []OrderItemModel
	CreatedAt  time.Time
}

// OrderItemModel 訂單項目, PriceCents為下單當下的價格快照
// 同一商品重複下單會產生多筆項目, 不做數量聚合
type OrderItemModel struct {
	OrderID    uuid.UUID
	ProductID  int64
	PriceCents int64
}
