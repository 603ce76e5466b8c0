package trade

import (
	"github.com/crm/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence. Reads
// return orders with their products loaded; Save persists the order
// together with its product associations.
type OrderRepository interface {
	shared.Repository[Order]
}
