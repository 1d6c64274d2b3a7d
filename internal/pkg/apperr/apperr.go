package apperr

import "fmt"

// Code 錯誤代碼, 對應http status code, 460為自訂參數錯誤
type Code int32

const (
	BadRequestCode      Code = 400
	UnauthenticatedCode Code = 401
	UnauthorizedCode    Code = 403
	NotFoundCode        Code = 404
	ConflictCode        Code = 409
	InvalidArgumentCode Code = 460
	InternalErrorCode   Code = 500
)

// ErrStrMap 錯誤代碼對應的外部訊息, 不會暴露內部錯誤細節
var ErrStrMap = map[Code]string{
	BadRequestCode:      "bad request",
	UnauthenticatedCode: "unauthenticated",
	UnauthorizedCode:    "unauthorized",
	NotFoundCode:        "resource not found",
	ConflictCode:        "resource conflict",
	InvalidArgumentCode: "invalid argument",
	InternalErrorCode:   "internal server error",
}

// AppError 帶錯誤代碼的error, 可用errors.As取出
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包裝底層錯誤, 對外僅顯示message, 底層錯誤僅供log使用
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HTTPStatus 轉換為http status code, 自訂代碼一律轉為400
func (c Code) HTTPStatus() int {
	if c == InvalidArgumentCode {
		return 400
	}
	return int(c)
}

func (e *AppError) HTTPStatus() int {
	return e.Code.HTTPStatus()
}
