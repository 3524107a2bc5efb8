package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/storekit/backend/api/http/presenter"
	"github.com/storekit/backend/pkg/apperr"
	"github.com/storekit/backend/pkg/product"
)

// ImageStore is the upload storage slice the handlers need: persisting a
// multipart file and handing its URL to the catalog.
type ImageStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

type ProductHandler struct {
	catalog product.Catalog
	images  ImageStore
}

func NewProductHandler(catalog product.Catalog, images ImageStore) *ProductHandler {
	return &ProductHandler{catalog: catalog, images: images}
}

type productResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProductResponse(p product.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type productPageResponse struct {
	Data []productResponse `json:"data"`
	Meta product.Meta      `json:"meta"`
}

// List returns one page of the catalog, newest first.
// @Summary Get all products (paginated)
// @Tags    products
// @Produce json
// @Param   page query int false "page number (default 1)"
// @Param   limit query int false "page size (default 10, max 100)"
// @Success 200 {object} productPageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, limit, err := parsePageLimit(c)
	if err != nil {
		return presenter.FromError(c, err)
	}
	result, err := h.catalog.FindAll(c.Context(), page, limit)
	if err != nil {
		return presenter.FromError(c, err)
	}
	data := make([]productResponse, 0, len(result.Data))
	for _, p := range result.Data {
		data = append(data, toProductResponse(p))
	}
	return presenter.JSON(c, http.StatusOK, productPageResponse{Data: data, Meta: result.Meta})
}

// Get returns a single product.
// @Summary Get a product by ID
// @Tags    products
// @Produce json
// @Param   id path int true "product id"
// @Success 200 {object} productResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.FromError(c, err)
	}
	p, err := h.catalog.FindOne(c.Context(), id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toProductResponse(p))
}

type createProductRequest struct {
	Name        string  `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
}

func (r createProductRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.New(apperr.Invalid, "name is required")
	}
	if r.Price < 0 {
		return apperr.New(apperr.Invalid, "price must be greater than or equal to 0")
	}
	return nil
}

// Create adds a product. Accepts JSON or multipart form with an optional
// "image" file.
// @Summary Create a new product (requires authentication)
// @Tags    products
// @Accept  json
// @Accept  multipart/form-data
// @Produce json
// @Param   input body createProductRequest true "product payload"
// @Security BearerAuth
// @Success 201 {object} productResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request payload")
	}
	if err := req.validate(); err != nil {
		return presenter.FromError(c, err)
	}
	imageRef, err := h.saveImage(c)
	if err != nil {
		return presenter.FromError(c, err)
	}
	p, err := h.catalog.Create(c.Context(), product.CreateInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
	}, imageRef)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toProductResponse(p))
}

type updateProductRequest struct {
	Name        *string  `json:"name" form:"name"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
}

func (r updateProductRequest) validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apperr.New(apperr.Invalid, "name must not be empty")
	}
	if r.Price != nil && *r.Price < 0 {
		return apperr.New(apperr.Invalid, "price must be greater than or equal to 0")
	}
	return nil
}

// Update applies a partial update; absent fields keep their stored values.
// @Summary Update a product (requires authentication)
// @Tags    products
// @Accept  json
// @Accept  multipart/form-data
// @Produce json
// @Param   id path int true "product id"
// @Param   input body updateProductRequest true "partial product payload"
// @Security BearerAuth
// @Success 200 {object} productResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.FromError(c, err)
	}
	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return presenter.Error(c, http.StatusBadRequest, "invalid request payload")
	}
	if err := req.validate(); err != nil {
		return presenter.FromError(c, err)
	}
	imageRef, err := h.saveImage(c)
	if err != nil {
		return presenter.FromError(c, err)
	}
	p, err := h.catalog.Update(c.Context(), id, product.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}, imageRef)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toProductResponse(p))
}

// Delete removes a product and its image file.
// @Summary Delete a product (requires authentication)
// @Tags    products
// @Produce json
// @Param   id path int true "product id"
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.FromError(c, err)
	}
	if err := h.catalog.Remove(c.Context(), id); err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true})
}

// saveImage stores the optional multipart "image" file and returns its URL,
// or nil when the request carries no file.
func (h *ProductHandler) saveImage(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return nil, nil
	}
	url, err := h.images.Save(fh)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.New(apperr.Invalid, "invalid product id")
	}
	return id, nil
}
