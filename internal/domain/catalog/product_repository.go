package catalog

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	shared.Repository[Product]

	// FindByIDs finds all products whose ID is in ids. Missing IDs are
	// simply absent from the result, so the caller can detect them by
	// comparing lengths.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
}
