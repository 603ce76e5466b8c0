package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter Filter) (int64, error)
}

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
}

// SetOrderKey interprets an order-by key of the form "field" or
// "-field" (descending) and stores it on the filter. An empty key
// leaves the filter unsorted, yielding the store's default order.
func (f *Filter) SetOrderKey(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if rest, ok := strings.CutPrefix(key, "-"); ok {
		f.OrderBy = rest
		f.OrderDir = "desc"
		return
	}
	f.OrderBy = key
	f.OrderDir = "asc"
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		Filters:  make(map[string]any),
	}
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
