package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		code Code
		want int
	}{
		{BadRequestCode, 400},
		{UnauthenticatedCode, 401},
		{UnauthorizedCode, 403},
		{NotFoundCode, 404},
		{ConflictCode, 409},
		// 自訂代碼不能流出api邊界
		{InvalidArgumentCode, 400},
		{InternalErrorCode, 500},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, tc.code.HTTPStatus())
		require.Equal(t, tc.want, New(tc.code, "msg").HTTPStatus())
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(InternalErrorCode, "database error", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, error(err), &appErr)
	require.Equal(t, InternalErrorCode, appErr.Code)
	require.Contains(t, err.Error(), "database error")
}
