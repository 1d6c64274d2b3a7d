package appcontext

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/stretchr/testify/require"
)

// blockingProducer Close會block到release被關閉
type blockingProducer struct {
	release chan struct{}
	closed  atomic.Bool
}

func (p *blockingProducer) PublishOrderCreated(ctx context.Context, order *model.OrderModel) error {
	return nil
}

func (p *blockingProducer) Close() error {
	<-p.release
	p.closed.Store(true)
	return nil
}

func TestShutdown(t *testing.T) {
	app := &ApplicationContext{}

	err := app.Shutdown(context.Background())
	require.NoError(t, err)
}

func TestShutdown_Timeout(t *testing.T) {
	producer := &blockingProducer{release: make(chan struct{})}
	app := &ApplicationContext{OrderProducer: producer}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := app.Shutdown(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "shutdown timeout")

	// timeout回報後, 背景goroutine仍要能跑完, 不能卡死
	close(producer.release)
	require.Eventually(t, func() bool {
		return producer.closed.Load()
	}, time.Second, 10*time.Millisecond)
}
