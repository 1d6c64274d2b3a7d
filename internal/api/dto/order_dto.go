package dto

// CreateOrderDTO 下單請求, products為商品id清單
// 同一商品id可以出現多次, 每次出現都是一筆獨立項目
type CreateOrderDTO struct {
	Products []int64 `json:"products"`
}

// CreateOrderResponse 下單結果, total為十進位字串
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	Total   string `json:"total"`
}

type OrderItemDTO struct {
	ProductID int64  `json:"product_id"`
	Price     string `json:"price"`
}

type OrderDTO struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Total     string         `json:"total"`
	Items     []OrderItemDTO `json:"items"`
	CreatedAt string         `json:"created_at"`
}
