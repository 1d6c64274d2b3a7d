package db

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX pool與tx的共用介面, Queries不需要知道自己跑在哪種連線上
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier 所有資料庫查詢操作
type Querier interface {
	CreateUser(ctx context.Context, user *model.UserModel) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	GetUserByEmail(ctx context.Context, email string) (*model.UserModel, error)
	GetUserByEmailOrUsername(ctx context.Context, email, username string) (*model.UserModel, error)

	CreateProduct(ctx context.Context, product *model.ProductModel) (*model.ProductModel, error)
	GetProductByID(ctx context.Context, id int64) (*model.ProductModel, error)
	GetAllProducts(ctx context.Context) ([]model.ProductModel, error)
	UpdateProduct(ctx context.Context, product *model.ProductModel) error
	HardDeleteProduct(ctx context.Context, id int64) error
	// GetProductPricesByIDs 查詢指定商品的目前價格, 只回傳存在的商品
	GetProductPricesByIDs(ctx context.Context, ids []int64) ([]model.ProductPrice, error)

	CreateOrder(ctx context.Context, order *model.OrderModel) error
	CreateOrderItem(ctx context.Context, item *model.OrderItemModel) error
	// ListOrdersWithItemsByUserID 查詢用戶所有訂單與項目, 按建立時間由新到舊
	ListOrdersWithItemsByUserID(ctx context.Context, userID uuid.UUID) ([]model.OrderModel, error)

	CreateChatMessage(ctx context.Context, msg *model.ChatMessageModel) error
	ListChatMessagesByUserID(ctx context.Context, userID uuid.UUID) ([]model.ChatMessageModel, error)

	CreateContact(ctx context.Context, contact *model.ContactModel) error
}

type IStore interface {
	Querier
	// ExecTx 在單一交易內執行fn, fn回傳錯誤時rollback
	// 連線在任何路徑下都會歸還pool
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// Queries 持有一個DBTX, 可以是pool也可以是tx
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Store 結構用來管理數據庫連接和交易
type Store struct {
	*Queries
	db *pgxpool.Pool
}

// NewStore 創建一個新的 Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db:      db,
		Queries: New(db),
	}
}

// ExecTx 執行一個交易
func (s *Store) ExecTx(ctx context.Context, fn func(Querier) error) error {
	opts := pgx.TxOptions{
		IsoLevel:       pgx.ReadCommitted, // 最常用的隔離級別
		AccessMode:     pgx.ReadWrite,     // 需要寫入時使用
		DeferrableMode: pgx.NotDeferrable, // 通常使用立即檢查
	}

	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)

	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			// rollback失敗不改變原始錯誤, 只附帶資訊
			return fmt.Errorf("原始錯誤: %w, 回滾錯誤: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

var _ IStore = (*Store)(nil)
