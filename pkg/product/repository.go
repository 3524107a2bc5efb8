package product

import (
	"context"

	"github.com/storekit/backend/pkg/apperr"
)

var (
	ErrNotFound = apperr.New(apperr.NotFound, "product not found")
	// ErrConstraint covers store-side constraint rejections (e.g. the
	// non-negative price check) on create/update.
	ErrConstraint = apperr.New(apperr.Invalid, "failed to save product, check your input")
)

// Repository abstracts the product store.
type Repository interface {
	Create(ctx context.Context, p Product) (Product, error)
	// FindPage returns one page ordered by createdAt descending plus the
	// total row count.
	FindPage(ctx context.Context, limit, offset int) ([]Product, int64, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}

// FileStore is the slice of upload storage the catalog needs: releasing
// image files that are no longer referenced.
type FileStore interface {
	Remove(url string) error
}
