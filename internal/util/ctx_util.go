package util

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
)

// GetTokenPayloadFromContext 從請求上下文中取得token payload
// 若context內沒有payload則回傳nil
func GetTokenPayloadFromContext(ctx context.Context) *token.Payload {
	var tokenPayload *token.Payload

	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		tokenPayload = v.(*token.Payload)
	}

	return tokenPayload
}

func GetRequestIDFromContext(ctx context.Context) string {
	requestId := "unknown"
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		requestId = v.(string)
	}
	return requestId
}
