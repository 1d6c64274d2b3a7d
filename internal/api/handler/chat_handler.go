package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type ChatHandler struct {
	chatService service.IChatService
}

func NewChatHandler(chatService service.IChatService) *ChatHandler {
	if chatService == nil {
		panic("chatService cannot be nil")
	}
	return &ChatHandler{
		chatService: chatService,
	}
}

func convertChatMessageModelToDTO(m model.ChatMessageModel) dto.ChatMessageDTO {
	return dto.ChatMessageDTO{
		ID:        m.ID,
		Sender:    m.Sender,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// SendMessage 送出聊天訊息並取得bot回覆
func (c *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var sendDTO dto.SendMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&sendDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), nil, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	ctx := r.Context()
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
		return
	}

	reply, err := c.chatService.SendMessage(ctx, payload.UserID, sendDTO.Message)
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, convertChatMessageModelToDTO(*reply), nil)
}

// GetHistory 取得聊天記錄
func (c *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
		return
	}

	msgs, err := c.chatService.GetHistory(ctx, payload.UserID)
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	result := make([]dto.ChatMessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, convertChatMessageModelToDTO(msg))
	}
	api.SuccessJSON(w, result, nil)
}
