package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
)

type IContactService interface {
	// CreateContact 儲存聯絡表單
	CreateContact(ctx context.Context, arg *model.ContactModel) error
}

type ContactService struct {
	dbDao db.IStore
}

func NewContactService(dbDao db.IStore) IContactService {
	return &ContactService{dbDao: dbDao}
}

func (c *ContactService) CreateContact(ctx context.Context, arg *model.ContactModel) error {
	if strings.TrimSpace(arg.Name) == "" {
		return apperr.New(apperr.InvalidArgumentCode, "name is required")
	}
	if strings.TrimSpace(arg.Email) == "" {
		return apperr.New(apperr.InvalidArgumentCode, "email is required")
	}
	if strings.TrimSpace(arg.Message) == "" {
		return apperr.New(apperr.InvalidArgumentCode, "message is required")
	}

	if err := c.dbDao.CreateContact(ctx, arg); err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "database error", err)
	}
	return nil
}

var _ IContactService = (*ContactService)(nil)
