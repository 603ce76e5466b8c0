package trade

import (
	"time"

	"github.com/crm/backend/internal/domain/catalog"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a customer order referencing one or more products.
// TotalAmount is a snapshot of the product prices at creation time and
// is never recomputed, even if prices change later.
type Order struct {
	shared.BaseEntity
	CustomerID  uuid.UUID
	Products    []catalog.Product
	TotalAmount decimal.Decimal
	OrderDate   time.Time
}

// NewOrder creates a new order for the given customer and resolved
// products, computing the total once. The caller is responsible for
// the referential checks (customer exists, all products resolved,
// products non-empty).
func NewOrder(customerID uuid.UUID, products []catalog.Product, orderDate time.Time) *Order {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}

	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		CustomerID:  customerID,
		Products:    products,
		TotalAmount: total,
		OrderDate:   orderDate,
	}
}

// ProductIDs returns the IDs of the products in the order
func (o *Order) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(o.Products))
	for i, p := range o.Products {
		ids[i] = p.ID
	}
	return ids
}
