package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (IAuthService, token.Maker) {
	t.Helper()

	tokenMaker, err := token.NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	store := newFakeUserStore()
	return NewAuthService(NewUserService(store), tokenMaker), tokenMaker
}

func TestSignupAndLogin(t *testing.T) {
	svc, tokenMaker := newTestAuthService(t)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &model.CreateUserModel{
		Username: "royce",
		Email:    "royce@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signup.AccessToken)
	require.Equal(t, "royce", signup.User.Username)

	login, err := svc.Login(ctx, "royce@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)
	require.Equal(t, signup.User.ID, login.User.ID)

	payload, err := tokenMaker.VertifyToken(login.AccessToken)
	require.NoError(t, err)
	require.Equal(t, signup.User.ID, payload.UserID)
	require.Equal(t, "royce", payload.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &model.CreateUserModel{
		Username: "royce",
		Email:    "royce@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "royce@example.com", "wrongpass")
	requireAppErrCode(t, err, apperr.UnauthenticatedCode)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	// 帳號不存在與密碼錯誤回一樣的錯, 不洩漏email是否註冊過
	_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	requireAppErrCode(t, err, apperr.UnauthenticatedCode)
}

func TestMe(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &model.CreateUserModel{
		Username: "royce",
		Email:    "royce@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	authedCtx := context.WithValue(ctx, constants.AuthorizationPayloadKey, &token.Payload{
		UserID:   signup.User.ID,
		Username: signup.User.Username,
	})
	user, err := svc.Me(authedCtx)
	require.NoError(t, err)
	require.Equal(t, signup.User.ID, user.ID)
}

func TestMe_Unauthenticated(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Me(context.Background())
	requireAppErrCode(t, err, apperr.UnauthenticatedCode)
}
