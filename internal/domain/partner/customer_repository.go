package partner

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	shared.Repository[Customer]

	// FindByEmail finds a customer by email (case-sensitive exact match)
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// ExistsByEmail checks if a customer with the given email exists.
	// The match is case-sensitive and exact.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// InTransaction runs fn against a repository bound to a single
	// database transaction. Returning an error rolls back everything
	// written through that repository.
	InTransaction(ctx context.Context, fn func(repo CustomerRepository) error) error
}
