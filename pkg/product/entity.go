package product

import "time"

// Product is a catalog entry. Price is a fixed-point decimal string with two
// fractional digits; it is never held as a binary float to avoid rounding
// drift.
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateInput carries the fields accepted on creation. Price arrives as a
// number from the request and is normalized to the fixed-point string form.
type CreateInput struct {
	Name        string
	Description *string
	Price       float64
}

// UpdateInput carries a partial update; nil fields retain the stored value.
type UpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
}

// Page is one slice of the catalog plus pagination metadata. Meta always
// reflects the true total even when the requested page is past the end.
type Page struct {
	Data []Product
	Meta Meta
}

type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}
