package api

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
)

// Response 成功響應的統一格式
type Response struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

// ResponseError 錯誤響應的統一格式
// Details只帶業務訊息, 內部錯誤細節不出api邊界
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, data any, meta any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{
		Data: data,
		Meta: meta,
	})
}

func CreatedJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(Response{
		Data: data,
	})
}

func ErrorJSON(w http.ResponseWriter, code int, err error, message string) {
	status := apperr.Code(code).HTTPStatus()

	var details string
	if appErr, ok := err.(*apperr.AppError); ok {
		details = appErr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ResponseError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// ServiceErrorJSON 將service層錯誤轉為錯誤響應
// 非AppError的一律視為internal error
func ServiceErrorJSON(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperr.AppError); ok {
		ErrorJSON(w, int(appErr.Code), appErr, apperr.ErrStrMap[appErr.Code])
		return
	}
	ErrorJSON(w, int(apperr.InternalErrorCode), err, apperr.ErrStrMap[apperr.InternalErrorCode])
}
