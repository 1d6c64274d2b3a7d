package redis_repo

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *ProductPriceRepo {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Redis not configured, skipping")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	return NewProductPriceRepo(client)
}

func TestProductPriceRepo(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.SetProductPrice(ctx, 42, 1775)
	require.NoError(t, err)

	price, err := repo.GetProductPrice(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, int64(1775), price)

	err = repo.DeleteProductPrice(ctx, 42)
	require.NoError(t, err)

	_, err = repo.GetProductPrice(ctx, 42)
	require.ErrorIs(t, err, ErrPriceNotCached)
}

func TestGetProductPrice_NotCached(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetProductPrice(context.Background(), 99999999)
	require.ErrorIs(t, err, ErrPriceNotCached)
}
