package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

func convertProductModelToDTO(m model.ProductModel) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          m.ID,
		Title:       m.Title,
		Category:    m.Category,
		Tag:         m.Tag,
		Img:         m.Img,
		Description: m.Description,
		Price:       util.FormatCents(m.PriceCents),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}

func parseProductID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// GetAllProducts 取得所有商品
func (p *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productService.GetAllProducts(r.Context())
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for _, product := range products {
		result = append(result, convertProductModelToDTO(product))
	}
	api.SuccessJSON(w, result, nil)
}

// GetProduct 取得單一商品
func (p *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		api.ErrorJSON(w, int(apperr.InvalidArgumentCode), nil, apperr.ErrStrMap[apperr.InvalidArgumentCode])
		return
	}

	product, err := p.productService.GetProductByID(r.Context(), id)
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, convertProductModelToDTO(*product), nil)
}

// CreateProduct 建立商品, admin only
func (p *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), nil, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	priceCents, err := util.ParsePriceToCents(createDTO.Price)
	if err != nil {
		api.ErrorJSON(w, int(apperr.InvalidArgumentCode), apperr.New(apperr.InvalidArgumentCode, err.Error()), apperr.ErrStrMap[apperr.InvalidArgumentCode])
		return
	}

	product, err := p.productService.CreateProduct(r.Context(), &model.ProductModel{
		Title:       createDTO.Title,
		Category:    createDTO.Category,
		Tag:         createDTO.Tag,
		Img:         createDTO.Img,
		Description: createDTO.Description,
		PriceCents:  priceCents,
	})
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.CreatedJSON(w, convertProductModelToDTO(*product))
}

// UpdateProduct 更新商品, admin only
func (p *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		api.ErrorJSON(w, int(apperr.InvalidArgumentCode), nil, apperr.ErrStrMap[apperr.InvalidArgumentCode])
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), nil, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	priceCents, err := util.ParsePriceToCents(updateDTO.Price)
	if err != nil {
		api.ErrorJSON(w, int(apperr.InvalidArgumentCode), apperr.New(apperr.InvalidArgumentCode, err.Error()), apperr.ErrStrMap[apperr.InvalidArgumentCode])
		return
	}

	err = p.productService.UpdateProduct(r.Context(), &model.ProductModel{
		ID:          id,
		Title:       updateDTO.Title,
		Category:    updateDTO.Category,
		Tag:         updateDTO.Tag,
		Img:         updateDTO.Img,
		Description: updateDTO.Description,
		PriceCents:  priceCents,
	})
	if err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// DeleteProduct 刪除商品, admin only
func (p *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		api.ErrorJSON(w, int(apperr.InvalidArgumentCode), nil, apperr.ErrStrMap[apperr.InvalidArgumentCode])
		return
	}

	if err := p.productService.DeleteProduct(r.Context(), id); err != nil {
		api.ServiceErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}
