package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

func (q *Queries) CreateProduct(ctx context.Context, product *model.ProductModel) (*model.ProductModel, error) {
	const stmt = `
INSERT INTO products (title, category, tag, img, description, price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

	p := *product
	err := q.db.QueryRow(ctx, stmt,
		product.Title, product.Category, product.Tag, product.Img, product.Description, product.PriceCents,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (q *Queries) GetProductByID(ctx context.Context, id int64) (*model.ProductModel, error) {
	const query = `
SELECT id, title, category, tag, img, description, price_cents, created_at, updated_at
FROM products
WHERE id = $1`

	var p model.ProductModel
	err := q.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Category, &p.Tag, &p.Img, &p.Description, &p.PriceCents, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (q *Queries) GetAllProducts(ctx context.Context) ([]model.ProductModel, error) {
	const query = `
SELECT id, title, category, tag, img, description, price_cents, created_at, updated_at
FROM products
ORDER BY id DESC`

	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.ProductModel
	for rows.Next() {
		var p model.ProductModel
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Tag, &p.Img, &p.Description, &p.PriceCents, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (q *Queries) UpdateProduct(ctx context.Context, product *model.ProductModel) error {
	const stmt = `
UPDATE products
SET title = $2, category = $3, tag = $4, img = $5, description = $6, price_cents = $7, updated_at = now()
WHERE id = $1`

	tag, err := q.db.Exec(ctx, stmt,
		product.ID, product.Title, product.Category, product.Tag, product.Img, product.Description, product.PriceCents,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (q *Queries) HardDeleteProduct(ctx context.Context, id int64) error {
	const stmt = `DELETE FROM products WHERE id = $1`

	tag, err := q.db.Exec(ctx, stmt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// GetProductPricesByIDs 訂單管線的catalog讀取路徑
// 只回傳目前存在的商品, 不存在的ID直接缺席, 不視為錯誤
func (q *Queries) GetProductPricesByIDs(ctx context.Context, ids []int64) ([]model.ProductPrice, error) {
	const query = `
SELECT id, price_cents
FROM products
WHERE id = ANY($1)`

	rows, err := q.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []model.ProductPrice
	for rows.Next() {
		var p model.ProductPrice
		if err := rows.Scan(&p.ProductID, &p.PriceCents); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}
