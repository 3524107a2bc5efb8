package product

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/storekit/backend/pkg/apperr"
)

var (
	errBadPage  = apperr.New(apperr.Invalid, "page must be greater than 0")
	errBadLimit = apperr.New(apperr.Invalid, "limit must be between 1 and 100")
)

const maxPageSize = 100

// Catalog is the product CRUD surface with offset pagination and advisory
// image cleanup.
type Catalog interface {
	Create(ctx context.Context, in CreateInput, imageRef *string) (Product, error)
	FindAll(ctx context.Context, page, limit int) (Page, error)
	FindOne(ctx context.Context, id int64) (Product, error)
	Update(ctx context.Context, id int64, in UpdateInput, imageRef *string) (Product, error)
	Remove(ctx context.Context, id int64) error
}

type catalog struct {
	repo  Repository
	files FileStore
	log   zerolog.Logger
}

// NewCatalog returns the default Catalog implementation.
func NewCatalog(repo Repository, files FileStore, log zerolog.Logger) Catalog {
	return &catalog{repo: repo, files: files, log: log.With().Str("component", "catalog").Logger()}
}

func (c *catalog) Create(ctx context.Context, in CreateInput, imageRef *string) (Product, error) {
	price, err := NormalizePrice(in.Price)
	if err != nil {
		return Product{}, err
	}
	created, err := c.repo.Create(ctx, Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		ImageURL:    imageRef,
	})
	if err != nil {
		if errors.Is(err, ErrConstraint) {
			return Product{}, err
		}
		c.log.Error().Err(err).Msg("create product failed")
		return Product{}, apperr.Wrap(apperr.Internal, "failed to create product", err)
	}
	return created, nil
}

// FindAll validates pagination before touching the store. A page past the
// last one is not an error: data comes back empty and meta keeps the true
// total.
func (c *catalog) FindAll(ctx context.Context, page, limit int) (Page, error) {
	if page < 1 {
		return Page{}, errBadPage
	}
	if limit < 1 || limit > maxPageSize {
		return Page{}, errBadLimit
	}
	offset := (page - 1) * limit
	data, total, err := c.repo.FindPage(ctx, limit, offset)
	if err != nil {
		c.log.Error().Err(err).Int("page", page).Int("limit", limit).Msg("list products failed")
		return Page{}, apperr.Wrap(apperr.Internal, "failed to fetch products", err)
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	if data == nil {
		data = []Product{}
	}
	return Page{
		Data: data,
		Meta: Meta{Total: total, Page: page, Limit: limit, TotalPages: totalPages},
	}, nil
}

func (c *catalog) FindOne(ctx context.Context, id int64) (Product, error) {
	p, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Product{}, err
		}
		c.log.Error().Err(err).Int64("id", id).Msg("fetch product failed")
		return Product{}, apperr.Wrap(apperr.Internal, "failed to fetch product", err)
	}
	return p, nil
}

// Update merges only supplied fields into the stored product. A replaced
// image file is released best-effort before the row is persisted.
func (c *catalog) Update(ctx context.Context, id int64, in UpdateInput, imageRef *string) (Product, error) {
	p, err := c.FindOne(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if imageRef != nil && (p.ImageURL == nil || *p.ImageURL != *imageRef) {
		c.releaseImage(p)
		p.ImageURL = imageRef
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Price != nil {
		price, err := NormalizePrice(*in.Price)
		if err != nil {
			return Product{}, err
		}
		p.Price = price
	}
	updated, err := c.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, ErrConstraint) {
			return Product{}, err
		}
		c.log.Error().Err(err).Int64("id", id).Msg("update product failed")
		return Product{}, apperr.Wrap(apperr.Internal, "failed to update product", err)
	}
	return updated, nil
}

// Remove deletes the row and releases the associated image. The unknown-id
// case fails before any filesystem call.
func (c *catalog) Remove(ctx context.Context, id int64) error {
	p, err := c.FindOne(ctx, id)
	if err != nil {
		return err
	}
	c.releaseImage(p)
	if err := c.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		c.log.Error().Err(err).Int64("id", id).Msg("delete product failed")
		return apperr.Wrap(apperr.Internal, "failed to delete product", err)
	}
	return nil
}

// releaseImage is advisory cleanup: a failed unlink is logged and swallowed,
// it never affects the primary mutation.
func (c *catalog) releaseImage(p Product) {
	if p.ImageURL == nil || *p.ImageURL == "" {
		return
	}
	if err := c.files.Remove(*p.ImageURL); err != nil {
		c.log.Warn().Err(err).Int64("id", p.ID).Str("url", *p.ImageURL).Msg("failed to remove image file")
	}
}
