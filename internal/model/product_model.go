package model

import "time"

// ProductModel 商品, 價格一律使用最小幣值單位(分)儲存與計算, 避免浮點誤差
type ProductModel struct {
	ID          int64
	Title       string
	Category    string
	Tag         string
	Img         string
	Description string
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductPrice 訂單管線唯一會讀取的商品資訊 {id, price}
type ProductPrice struct {
	ProductID  int64
	PriceCents int64
}
