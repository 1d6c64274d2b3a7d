package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

func convertOrderModelToDTO(m model.OrderModel) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(m.OrderItems))
	for _, item := range m.OrderItems {
		items = append(items, dto.OrderItemDTO{
			ProductID: item.ProductID,
			Price:     util.FormatCents(item.PriceCents),
		})
	}
	return dto.OrderDTO{
		ID:        m.OrderID.String(),
		UserID:    m.UserID.String(),
		Total:     util.FormatCents(m.TotalCents),
		Items:     items,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// CreateOrder 建立訂單
func (o *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), nil, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	ctx := r.Context()
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
		return
	}

	order, err := o.orderService.CreateOrder(ctx, payload.UserID, createDTO.Products)
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.CreatedJSON(w, dto.CreateOrderResponse{
		OrderID: order.OrderID.String(),
		Total:   util.FormatCents(order.TotalCents),
	})
}

// ListOrders 查詢當前用戶所有訂單
func (o *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
		return
	}

	orders, err := o.orderService.ListOrdersByUserID(ctx, payload.UserID)
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	result := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		result = append(result, convertOrderModelToDTO(order))
	}
	api.SuccessJSON(w, result, nil)
}
