package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type ContactHandler struct {
	contactService service.IContactService
}

func NewContactHandler(contactService service.IContactService) *ContactHandler {
	if contactService == nil {
		panic("contactService cannot be nil")
	}
	return &ContactHandler{
		contactService: contactService,
	}
}

// CreateContact 儲存聯絡表單
func (c *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateContactDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), nil, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	err := c.contactService.CreateContact(r.Context(), &model.ContactModel{
		Name:    createDTO.Name,
		Email:   createDTO.Email,
		Message: createDTO.Message,
	})
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.CreatedJSON(w, nil)
}
