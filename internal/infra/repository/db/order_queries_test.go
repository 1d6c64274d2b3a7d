package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T) *model.UserModel {
	t.Helper()

	id := uuid.New()
	user := &model.UserModel{
		ID:           id,
		Username:     fmt.Sprintf("user_%s", id.String()[:8]),
		Email:        fmt.Sprintf("%s@example.com", id.String()[:8]),
		HashPassword: "not-a-real-hash",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	err := testStore.CreateUser(context.Background(), user)
	require.NoError(t, err)
	return user
}

func createRandomProduct(t *testing.T, priceCents int64) *model.ProductModel {
	t.Helper()

	product, err := testStore.CreateProduct(context.Background(), &model.ProductModel{
		Title:      fmt.Sprintf("Test Product %s", uuid.New().String()[:8]),
		Category:   "test",
		PriceCents: priceCents,
	})
	require.NoError(t, err)
	require.NotZero(t, product.ID)
	return product
}

func TestCreateOrderWithItemsTx(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestCreateOrderWithItemsTx")
	}

	user := createRandomUser(t)
	p1 := createRandomProduct(t, 1000)
	p2 := createRandomProduct(t, 550)

	order := &model.OrderModel{
		OrderID:    uuid.New(),
		UserID:     user.ID,
		TotalCents: 1550,
		CreatedAt:  time.Now(),
	}

	err := testStore.ExecTx(context.Background(), func(q Querier) error {
		if err := q.CreateOrder(context.Background(), order); err != nil {
			return err
		}
		for _, pid := range []int64{p1.ID, p2.ID} {
			var price int64 = 1000
			if pid == p2.ID {
				price = 550
			}
			if err := q.CreateOrderItem(context.Background(), &model.OrderItemModel{
				OrderID:    order.OrderID,
				ProductID:  pid,
				PriceCents: price,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	orders, err := testStore.ListOrdersWithItemsByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, order.OrderID, orders[0].OrderID)
	require.Equal(t, int64(1550), orders[0].TotalCents)
	require.Len(t, orders[0].OrderItems, 2)
}

func TestExecTx_RollbackOnError(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestExecTx_RollbackOnError")
	}

	user := createRandomUser(t)
	orderID := uuid.New()
	injected := errors.New("injected failure")

	err := testStore.ExecTx(context.Background(), func(q Querier) error {
		if err := q.CreateOrder(context.Background(), &model.OrderModel{
			OrderID:    orderID,
			UserID:     user.ID,
			TotalCents: 1000,
			CreatedAt:  time.Now(),
		}); err != nil {
			return err
		}
		if err := q.CreateOrderItem(context.Background(), &model.OrderItemModel{
			OrderID:    orderID,
			ProductID:  1,
			PriceCents: 1000,
		}); err != nil {
			return err
		}
		// 最後一步失敗, 前面的寫入必須全部回滾
		return injected
	})
	require.ErrorIs(t, err, injected)

	orders, err := testStore.ListOrdersWithItemsByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestListOrdersWithItemsByUserID_Ordering(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestListOrdersWithItemsByUserID_Ordering")
	}

	user := createRandomUser(t)
	p := createRandomProduct(t, 225)

	var orderIDs []uuid.UUID
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		order := &model.OrderModel{
			OrderID:    uuid.New(),
			UserID:     user.ID,
			TotalCents: 225,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		err := testStore.ExecTx(context.Background(), func(q Querier) error {
			if err := q.CreateOrder(context.Background(), order); err != nil {
				return err
			}
			return q.CreateOrderItem(context.Background(), &model.OrderItemModel{
				OrderID:    order.OrderID,
				ProductID:  p.ID,
				PriceCents: 225,
			})
		})
		require.NoError(t, err)
		orderIDs = append(orderIDs, order.OrderID)
	}

	orders, err := testStore.ListOrdersWithItemsByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	// 由新到舊
	require.Equal(t, orderIDs[2], orders[0].OrderID)
	require.Equal(t, orderIDs[0], orders[2].OrderID)
}

// 歷史訂單不受後續改價影響
func TestOrderItemPriceSnapshot(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestOrderItemPriceSnapshot")
	}

	user := createRandomUser(t)
	p := createRandomProduct(t, 1000)

	order := &model.OrderModel{
		OrderID:    uuid.New(),
		UserID:     user.ID,
		TotalCents: 1000,
		CreatedAt:  time.Now(),
	}
	err := testStore.ExecTx(context.Background(), func(q Querier) error {
		if err := q.CreateOrder(context.Background(), order); err != nil {
			return err
		}
		return q.CreateOrderItem(context.Background(), &model.OrderItemModel{
			OrderID:    order.OrderID,
			ProductID:  p.ID,
			PriceCents: 1000,
		})
	})
	require.NoError(t, err)

	p.PriceCents = 9999
	require.NoError(t, testStore.UpdateProduct(context.Background(), p))

	orders, err := testStore.ListOrdersWithItemsByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, int64(1000), orders[0].OrderItems[0].PriceCents)
	require.Equal(t, int64(1000), orders[0].TotalCents)
}
