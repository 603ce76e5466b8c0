package catalog

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Validation messages surfaced to API callers.
const (
	MsgPriceNotPositive = "Price must be positive"
	MsgStockNegative    = "Stock cannot be negative"
)

// Product represents a sellable product in the catalog context
type Product struct {
	shared.BaseEntity
	Name  string
	Price decimal.Decimal
	Stock int
}

// NewProduct creates a new product. Price and stock constraints are
// checked by the workflow so that all violations can be reported at once.
func NewProduct(name string, price decimal.Decimal, stock int) *Product {
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		Stock:      stock,
	}
}

// ValidPrice reports whether the price is strictly positive
func ValidPrice(price decimal.Decimal) bool {
	return price.GreaterThan(decimal.Zero)
}

// ValidStock reports whether the stock level is non-negative
func ValidStock(stock int) bool {
	return stock >= 0
}
