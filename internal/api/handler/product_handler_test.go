package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	product  *model.ProductModel
	products []model.ProductModel
	err      error
	created  *model.ProductModel
}

func (f *fakeProductService) CreateProduct(ctx context.Context, arg *model.ProductModel) (*model.ProductModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = arg
	arg.ID = 1
	return arg, nil
}

func (f *fakeProductService) GetProductByID(ctx context.Context, id int64) (*model.ProductModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

func (f *fakeProductService) GetAllProducts(ctx context.Context) ([]model.ProductModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, arg *model.ProductModel) error {
	return f.err
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id int64) error {
	return f.err
}

func (f *fakeProductService) LookupPrices(ctx context.Context, ids []int64) (map[int64]int64, error) {
	return nil, nil
}

func newProductRouter(svc *fakeProductService) *chi.Mux {
	h := NewProductHandler(svc)
	r := chi.NewRouter()
	r.Get("/products", h.GetAllProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Post("/products", h.CreateProduct)
	return r
}

func TestGetProductHandler(t *testing.T) {
	svc := &fakeProductService{
		product: &model.ProductModel{
			ID:         7,
			Title:      "Keyboard",
			PriceCents: 1775,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	}
	r := newProductRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/products/7", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
			Price string `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(7), resp.Data.ID)
	require.Equal(t, "17.75", resp.Data.Price)
}

func TestGetProductHandler_InvalidID(t *testing.T) {
	r := newProductRouter(&fakeProductService{})

	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductHandler_NotFound(t *testing.T) {
	svc := &fakeProductService{err: apperr.New(apperr.NotFoundCode, "product not found")}
	r := newProductRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/products/99", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductHandler(t *testing.T) {
	svc := &fakeProductService{}
	r := newProductRouter(svc)

	body := `{"title":"Keyboard","category":"3c","price":"17.75"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	// 十進位字串在api邊界轉為分
	require.Equal(t, int64(1775), svc.created.PriceCents)
}

func TestCreateProductHandler_InvalidPrice(t *testing.T) {
	testCases := []string{
		`{"title":"Keyboard","price":"17.755"}`,
		`{"title":"Keyboard","price":"-1.00"}`,
		`{"title":"Keyboard","price":"abc"}`,
	}

	for _, body := range testCases {
		r := newProductRouter(&fakeProductService{})
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
