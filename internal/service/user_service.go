package service

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/google/uuid"
)

type IUserService interface {
	// CreateUser 建立新用戶
	//
	// 錯誤:
	//   - apperr.InvalidArgumentCode 460: username或password不符合規則
	//   - apperr.ConflictCode 409: email或username已存在
	//   - apperr.InternalErrorCode 500: 資料庫錯誤
	CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error)
	GetUserByEmail(ctx context.Context, email string) (*model.UserModel, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
}

type UserService struct {
	dbDao db.IStore
}

func NewUserService(dbDao db.IStore) IUserService {
	return &UserService{
		dbDao: dbDao,
	}
}

func (u *UserService) CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
	if len(arg.Username) < constants.MinUsernameLength {
		return nil, apperr.New(apperr.InvalidArgumentCode, "username must be at least 3 characters")
	}
	if len(arg.Password) < constants.MinPasswordLength {
		return nil, apperr.New(apperr.InvalidArgumentCode, "password must be at least 6 characters")
	}

	// 檢查email或username是否已存在
	existing, err := u.dbDao.GetUserByEmailOrUsername(ctx, arg.Email, arg.Username)
	if err != nil && !db.IsNoRows(err) {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.ConflictCode, "user already exists")
	}

	hashedPassword, err := util.HashPassword(arg.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to hash password", err)
	}

	user := &model.UserModel{
		ID:           uuid.New(),
		Username:     arg.Username,
		Email:        arg.Email,
		HashPassword: hashedPassword,
		IsAdmin:      false,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.dbDao.CreateUser(ctx, user); err != nil {
		// 與前面的存在性檢查之間有race, unique constraint是最終防線
		if db.IsUniqueViolation(err) {
			return nil, apperr.New(apperr.ConflictCode, "user already exists")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}

	return user, nil
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	user, err := u.dbDao.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperr.New(apperr.NotFoundCode, "user not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	return user, nil
}

func (u *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	user, err := u.dbDao.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, apperr.New(apperr.NotFoundCode, "user not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	return user, nil
}

var _ IUserService = (*UserService)(nil)
