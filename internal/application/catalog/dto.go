package catalog

import (
	"github.com/crm/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// CreateProductResult is the uniform mutation payload for product
// creation: the product or the accumulated validation messages.
type CreateProductResult struct {
	Product *ProductResponse `json:"product"`
	Errors  []string         `json:"errors"`
}

// ProductListFilter represents structured filtering and pagination
// for product list queries
type ProductListFilter struct {
	Page         int
	PageSize     int
	OrderBy      string
	NameContains string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	StockMin     *int
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
}

// ToProductResponses converts a slice of domain products to DTOs
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
