package product

import (
	"github.com/shopspring/decimal"

	"github.com/storekit/backend/pkg/apperr"
)

var errNegativePrice = apperr.New(apperr.Invalid, "price must be greater than or equal to 0")

// NormalizePrice converts a numeric price into the canonical two-decimal
// fixed-point string the store and the API carry.
func NormalizePrice(price float64) (string, error) {
	d := decimal.NewFromFloat(price)
	if d.IsNegative() {
		return "", errNegativePrice
	}
	return d.StringFixed(2), nil
}
