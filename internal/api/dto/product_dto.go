package dto

// ProductDTO 商品資訊, price為十進位字串 ex: "17.75"
type ProductDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Tag         string `json:"tag"`
	Img         string `json:"img"`
	Description string `json:"description"`
	Price       string `json:"price"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateProductDTO struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Tag         string `json:"tag"`
	Img         string `json:"img"`
	Description string `json:"description"`
	Price       string `json:"price"` //十進位字串, 最多2位小數
}

type UpdateProductDTO struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Tag         string `json:"tag"`
	Img         string `json:"img"`
	Description string `json:"description"`
	Price       string `json:"price"`
}
