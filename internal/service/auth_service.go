package service

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type IAuthService interface {
	// Signup 註冊新用戶並發放token
	//
	// 錯誤:
	//   - apperr.InvalidArgumentCode 460: 輸入不符合規則
	//   - apperr.ConflictCode 409: 用戶已存在
	//   - apperr.InternalErrorCode 500: 內部處理錯誤
	Signup(ctx context.Context, arg *model.CreateUserModel) (*model.LoginResponseModel, error)
	// Login 帳號密碼登入
	//
	// 錯誤:
	//   - apperr.UnauthenticatedCode 401: email或密碼錯誤
	//   - apperr.InternalErrorCode 500: 內部處理錯誤
	Login(ctx context.Context, email string, password string) (*model.LoginResponseModel, error)
	// Me 取得當前登入user資訊
	// 錯誤:
	//   - apperr.UnauthenticatedCode 401: 未登入
	Me(ctx context.Context) (*model.UserModel, error)
}

type AuthService struct {
	userService IUserService
	tokenMaker  token.Maker
}

func NewAuthService(userService IUserService, tokenMaker token.Maker) IAuthService {
	if reflect.ValueOf(userService).IsNil() {
		panic("auth service initialization failed: userService cannot be nil")
	}
	if reflect.ValueOf(tokenMaker).IsNil() {
		panic("auth service initialization failed: tokenMaker cannot be nil")
	}

	return &AuthService{
		userService: userService,
		tokenMaker:  tokenMaker,
	}
}

func (a *AuthService) Signup(ctx context.Context, arg *model.CreateUserModel) (*model.LoginResponseModel, error) {
	user, err := a.userService.CreateUser(ctx, arg)
	if err != nil {
		return nil, err
	}

	accessToken, _, err := a.tokenMaker.CreateToken(
		user.ID, user.Username, user.IsAdmin,
		time.Duration(constants.AccessTokenDuration)*time.Hour,
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create token", err)
	}

	return &model.LoginResponseModel{
		AccessToken: accessToken,
		User:        *user,
	}, nil
}

func (a *AuthService) Login(ctx context.Context, email string, password string) (*model.LoginResponseModel, error) {
	user, err := a.userService.GetUserByEmail(ctx, email)
	if err != nil {
		var appErr *apperr.AppError
		if errors.As(err, &appErr) && appErr.Code == apperr.NotFoundCode {
			// 不洩漏email是否存在
			return nil, apperr.New(apperr.UnauthenticatedCode, "invalid email or password")
		}
		return nil, err
	}

	if err := util.CheckPassword(password, user.HashPassword); err != nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, "invalid email or password")
	}

	accessToken, _, err := a.tokenMaker.CreateToken(
		user.ID, user.Username, user.IsAdmin,
		time.Duration(constants.AccessTokenDuration)*time.Hour,
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create token", err)
	}

	return &model.LoginResponseModel{
		AccessToken: accessToken,
		User:        *user,
	}, nil
}

func (a *AuthService) Me(ctx context.Context) (*model.UserModel, error) {
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, "unauthenticated")
	}
	return a.userService.GetUserByID(ctx, payload.UserID)
}

var _ IAuthService = (*AuthService)(nil)
