package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetProduct(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestCreateAndGetProduct")
	}

	created := createRandomProduct(t, 1234)
	t.Cleanup(func() {
		testStore.HardDeleteProduct(context.Background(), created.ID)
	})

	got, err := testStore.GetProductByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, int64(1234), got.PriceCents)
}

func TestGetProductPricesByIDs(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestGetProductPricesByIDs")
	}

	p1 := createRandomProduct(t, 1000)
	p2 := createRandomProduct(t, 550)
	t.Cleanup(func() {
		testStore.HardDeleteProduct(context.Background(), p1.ID)
		testStore.HardDeleteProduct(context.Background(), p2.ID)
	})

	// 夾帶一個不存在的ID, 結果內不應出現
	prices, err := testStore.GetProductPricesByIDs(context.Background(), []int64{p1.ID, p2.ID, 999999999})
	require.NoError(t, err)
	require.Len(t, prices, 2)

	got := make(map[int64]int64)
	for _, p := range prices {
		got[p.ProductID] = p.PriceCents
	}
	require.Equal(t, int64(1000), got[p1.ID])
	require.Equal(t, int64(550), got[p2.ID])
}

func TestUpdateProduct_NotFound(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestUpdateProduct_NotFound")
	}

	p := createRandomProduct(t, 100)
	require.NoError(t, testStore.HardDeleteProduct(context.Background(), p.ID))

	err := testStore.UpdateProduct(context.Background(), p)
	require.ErrorIs(t, err, ErrRecordNotFound)
}
