package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
)

// AuthMiddleware 驗證ctx是否有token payload
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload)
		if !ok {
			api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware 僅允許admin用戶, 必須接在AuthPayloadMiddleware之後
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload)
		if !ok {
			api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
			return
		}
		if !payload.IsAdmin {
			api.ErrorJSON(w, int(apperr.UnauthorizedCode), apperr.New(apperr.UnauthorizedCode, "admin only"), apperr.ErrStrMap[apperr.UnauthorizedCode])
			return
		}
		next.ServeHTTP(w, r)
	})
}
