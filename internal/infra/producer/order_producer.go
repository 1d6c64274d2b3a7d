package producer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/segmentio/kafka-go"
)

// OrderCreatedEvent 訂單建立成功後發布的事件
type OrderCreatedEvent struct {
	OrderID    string                  `json:"order_id"`
	UserID     string                  `json:"user_id"`
	TotalCents int64                   `json:"total_cents"`
	Items      []OrderCreatedEventItem `json:"items"`
	CreatedAt  time.Time               `json:"created_at"`
}

type OrderCreatedEventItem struct {
	ProductID  int64 `json:"product_id"`
	PriceCents int64 `json:"price_cents"`
}

var ErrProducerClosed = errors.New("producer is closed")

// IOrderProducer 訂單事件發布介面
type IOrderProducer interface {
	// PublishOrderCreated 發布order.created事件
	// 同步發送, 會block到訊息寫入
	PublishOrderCreated(ctx context.Context, order *model.OrderModel) error
	Close() error
}

type OrderProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

func NewOrderProducer(brokers []string, topic string) *OrderProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,

		// 錯誤處理
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Printf("kafka producer error: "+msg, args...)
		}),

		// 壓縮設置
		Compression: kafka.Snappy,
	}

	return &OrderProducer{writer: writer}
}

func (p *OrderProducer) PublishOrderCreated(ctx context.Context, order *model.OrderModel) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	evt := OrderCreatedEvent{
		OrderID:    order.OrderID.String(),
		UserID:     order.UserID.String(),
		TotalCents: order.TotalCents,
		CreatedAt:  order.CreatedAt,
	}
	for _, item := range order.OrderItems {
		evt.Items = append(evt.Items, OrderCreatedEventItem{
			ProductID:  item.ProductID,
			PriceCents: item.PriceCents,
		})
	}

	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte("order.created"),
			},
		},
	})
}

func (p *OrderProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

var _ IOrderProducer = (*OrderProducer)(nil)
