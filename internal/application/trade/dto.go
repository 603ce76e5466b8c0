package trade

import (
	"time"

	catalogapp "github.com/crm/backend/internal/application/catalog"
	partnerapp "github.com/crm/backend/internal/application/partner"
	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	ProductIDs []uuid.UUID `json:"product_ids"`
	OrderDate  *time.Time  `json:"order_date"`
}

// CreateOrderResult is the uniform mutation payload for order creation
type CreateOrderResult struct {
	Order  *OrderResponse `json:"order"`
	Errors []string       `json:"errors"`
}

// OrderListFilter represents structured filtering and pagination for
// order list queries
type OrderListFilter struct {
	Page       int
	PageSize   int
	OrderBy    string
	CustomerID *uuid.UUID
	TotalMin   *decimal.Decimal
	TotalMax   *decimal.Decimal
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          uuid.UUID                    `json:"id"`
	Customer    partnerapp.CustomerResponse  `json:"customer"`
	Products    []catalogapp.ProductResponse `json:"products"`
	TotalAmount decimal.Decimal              `json:"total_amount"`
	OrderDate   time.Time                    `json:"order_date"`
}

// ToOrderResponse converts a domain order and its customer to a
// response DTO
func ToOrderResponse(o *trade.Order, c *partner.Customer) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		Customer:    partnerapp.ToCustomerResponse(c),
		Products:    catalogapp.ToProductResponses(o.Products),
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
	}
}
