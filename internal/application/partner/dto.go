package partner

import (
	"time"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateCustomerResult is the uniform mutation payload: either the
// created customer or a list of validation messages, never an error.
type CreateCustomerResult struct {
	Customer *CustomerResponse `json:"customer"`
	Message  string            `json:"message"`
	Errors   []string          `json:"errors"`
}

// BulkCreateCustomersResult carries the customers that were persisted
// and one "Row <n>: ..." message per skipped input row, both in input
// order.
type BulkCreateCustomersResult struct {
	Customers []CustomerResponse `json:"customers"`
	Errors    []string           `json:"errors"`
}

// CustomerListFilter represents structured filtering and pagination
// for customer list queries
type CustomerListFilter struct {
	Page         int
	PageSize     int
	OrderBy      string
	NameContains string
	EmailExact   string
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers to DTOs
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
