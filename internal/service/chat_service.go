package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/google/uuid"
)

type IChatService interface {
	// SendMessage 儲存用戶訊息並回覆一則bot訊息
	// 兩則訊息都會寫入歷史
	SendMessage(ctx context.Context, userID uuid.UUID, message string) (*model.ChatMessageModel, error)
	// GetHistory 取得用戶聊天記錄, 由舊到新
	GetHistory(ctx context.Context, userID uuid.UUID) ([]model.ChatMessageModel, error)
}

type ChatService struct {
	dbDao db.IStore
}

func NewChatService(dbDao db.IStore) IChatService {
	return &ChatService{dbDao: dbDao}
}

func (c *ChatService) SendMessage(ctx context.Context, userID uuid.UUID, message string) (*model.ChatMessageModel, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperr.New(apperr.InvalidArgumentCode, "message is required")
	}

	userMsg := &model.ChatMessageModel{
		UserID:  userID,
		Sender:  string(constants.ChatSenderUser),
		Message: message,
	}
	botMsg := &model.ChatMessageModel{
		UserID:  userID,
		Sender:  string(constants.ChatSenderBot),
		Message: buildBotReply(message),
	}

	err := c.dbDao.ExecTx(ctx, func(q db.Querier) error {
		if err := q.CreateChatMessage(ctx, userMsg); err != nil {
			return err
		}
		return q.CreateChatMessage(ctx, botMsg)
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}

	return botMsg, nil
}

func (c *ChatService) GetHistory(ctx context.Context, userID uuid.UUID) ([]model.ChatMessageModel, error) {
	msgs, err := c.dbDao.ListChatMessagesByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	return msgs, nil
}

// buildBotReply 罐頭回覆, 真正的對話引擎之後再接
func buildBotReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "order"):
		return "您可以在訂單頁面查看所有訂單記錄。"
	case strings.Contains(lower, "price"):
		return "商品價格以商品頁面顯示為準。"
	default:
		return fmt.Sprintf("已收到您的訊息: %s, 客服人員會盡快回覆。", message)
	}
}

var _ IChatService = (*ChatService)(nil)
