package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeChatStore 在fakeStore上加一層記憶體聊天記錄
type fakeChatStore struct {
	fakeStore
	msgs   []model.ChatMessageModel
	nextID int64
}

func (f *fakeChatStore) CreateChatMessage(ctx context.Context, msg *model.ChatMessageModel) error {
	f.nextID++
	msg.ID = f.nextID
	msg.CreatedAt = time.Now()
	f.msgs = append(f.msgs, *msg)
	return nil
}

// ExecTx 不能繼承fakeStore的版本, fn必須拿到外層的fakeChatStore
func (f *fakeChatStore) ExecTx(ctx context.Context, fn func(db.Querier) error) error {
	before := len(f.msgs)
	if err := fn(f); err != nil {
		f.msgs = f.msgs[:before]
		return err
	}
	return nil
}

func (f *fakeChatStore) ListChatMessagesByUserID(ctx context.Context, userID uuid.UUID) ([]model.ChatMessageModel, error) {
	var result []model.ChatMessageModel
	for _, m := range f.msgs {
		if m.UserID == userID {
			result = append(result, m)
		}
	}
	return result, nil
}

func TestSendMessage(t *testing.T) {
	store := &fakeChatStore{}
	svc := NewChatService(store)
	userID := uuid.New()

	reply, err := svc.SendMessage(context.Background(), userID, "where is my order?")
	require.NoError(t, err)
	require.Equal(t, string(constants.ChatSenderBot), reply.Sender)
	require.NotEmpty(t, reply.Message)
	require.NotZero(t, reply.ID)

	// 用戶訊息與bot回覆都要進入歷史
	history, err := svc.GetHistory(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, string(constants.ChatSenderUser), history[0].Sender)
	require.Equal(t, "where is my order?", history[0].Message)
	require.Equal(t, string(constants.ChatSenderBot), history[1].Sender)
}

func TestSendMessage_Empty(t *testing.T) {
	svc := NewChatService(&fakeChatStore{})

	_, err := svc.SendMessage(context.Background(), uuid.New(), "   ")
	requireAppErrCode(t, err, apperr.InvalidArgumentCode)
}
