package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/pkg/product"
)

type stubCatalog struct {
	created   product.Product
	createErr error
	page      product.Page
	pageErr   error
	found     product.Product
	foundErr  error
	removeErr error

	lastCreateInput product.CreateInput
	lastImageRef    *string
}

func (s *stubCatalog) Create(_ context.Context, in product.CreateInput, imageRef *string) (product.Product, error) {
	s.lastCreateInput = in
	s.lastImageRef = imageRef
	return s.created, s.createErr
}

func (s *stubCatalog) FindAll(context.Context, int, int) (product.Page, error) {
	return s.page, s.pageErr
}

func (s *stubCatalog) FindOne(context.Context, int64) (product.Product, error) {
	return s.found, s.foundErr
}

func (s *stubCatalog) Update(context.Context, int64, product.UpdateInput, *string) (product.Product, error) {
	return s.found, s.foundErr
}

func (s *stubCatalog) Remove(context.Context, int64) error {
	return s.removeErr
}

type stubImages struct{ url string }

func (s *stubImages) Save(*multipart.FileHeader) (string, error) { return s.url, nil }

func newProductApp(cat product.Catalog) *fiber.App {
	app := fiber.New()
	h := NewProductHandler(cat, &stubImages{url: "/uploads/x.png"})
	app.Get("/products", h.List)
	app.Get("/products/:id", h.Get)
	app.Post("/products", h.Create)
	app.Patch("/products/:id", h.Update)
	app.Delete("/products/:id", h.Delete)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func TestList_ReturnsDataAndMeta(t *testing.T) {
	desc := "High-performance laptop"
	cat := &stubCatalog{page: product.Page{
		Data: []product.Product{{ID: 1, Name: "Laptop", Description: &desc, Price: "999.99"}},
		Meta: product.Meta{Total: 1, Page: 1, Limit: 10, TotalPages: 1},
	}}
	app := newProductApp(cat)

	resp := get(t, app, "/products?page=1&limit=10")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	meta := body["meta"].(map[string]any)
	require.Equal(t, float64(1), meta["total"])
	require.Equal(t, float64(1), meta["totalPages"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	require.Equal(t, "999.99", first["price"], "price must stay a fixed-point string")
}

func TestList_NonNumericQuery(t *testing.T) {
	app := newProductApp(&stubCatalog{})

	resp := get(t, app, "/products?page=abc")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGet_NotFound(t *testing.T) {
	app := newProductApp(&stubCatalog{foundErr: product.ErrNotFound})

	resp := get(t, app, "/products/99")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "product not found", decodeBody(t, resp)["message"])
}

func TestGet_BadID(t *testing.T) {
	app := newProductApp(&stubCatalog{})

	resp := get(t, app, "/products/banana")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreate_JSONBody(t *testing.T) {
	cat := &stubCatalog{created: product.Product{ID: 1, Name: "Laptop", Price: "999.99"}}
	app := newProductApp(cat)

	resp := postJSON(t, app, "/products", `{"name":"Laptop","price":999.99}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "Laptop", cat.lastCreateInput.Name)
	require.InEpsilon(t, 999.99, cat.lastCreateInput.Price, 1e-9)
	require.Nil(t, cat.lastImageRef, "no image supplied")
}

func TestCreate_NegativePriceRejectedBeforeCatalog(t *testing.T) {
	cat := &stubCatalog{}
	app := newProductApp(cat)

	resp := postJSON(t, app, "/products", `{"name":"Laptop","price":-5}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Empty(t, cat.lastCreateInput.Name)
}

func TestCreate_MissingName(t *testing.T) {
	app := newProductApp(&stubCatalog{})

	resp := postJSON(t, app, "/products", `{"price":5}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDelete_Success(t *testing.T) {
	app := newProductApp(&stubCatalog{})

	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, decodeBody(t, resp)["success"])
}

func TestDelete_NotFound(t *testing.T) {
	app := newProductApp(&stubCatalog{removeErr: product.ErrNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
