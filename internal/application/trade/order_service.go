package trade

import (
	"context"
	"errors"
	"time"

	"github.com/crm/backend/internal/domain/catalog"
	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// Order creation messages. Part of the API contract.
const (
	MsgInvalidCustomerID = "Invalid customer ID"
	MsgNoProducts        = "At least one product must be provided"
	MsgInvalidProductIDs = "Some product IDs are invalid"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo    trade.OrderRepository
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Create creates a new order. Unlike the customer and product
// workflows the checks here are sequential gates: the first failing
// gate returns immediately with a single message and nothing is
// persisted. The total is a snapshot of the resolved products' prices
// at this moment.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &CreateOrderResult{Errors: []string{MsgInvalidCustomerID}}, nil
		}
		return nil, err
	}

	if len(req.ProductIDs) == 0 {
		return &CreateOrderResult{Errors: []string{MsgNoProducts}}, nil
	}

	products, err := s.productRepo.FindByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, err
	}
	// Count mismatch covers unknown IDs and duplicates alike; the
	// message intentionally does not say which IDs failed.
	if len(products) != len(req.ProductIDs) {
		return &CreateOrderResult{Errors: []string{MsgInvalidProductIDs}}, nil
	}

	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	order := trade.NewOrder(customer.ID, products, orderDate)
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order, customer)
	return &CreateOrderResult{
		Order:  &response,
		Errors: []string{},
	}, nil
}

// GetByID retrieves an order by ID with its customer and products
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order, customer)
	return &response, nil
}

// List retrieves all orders, optionally sorted by the given key
func (s *OrderService) List(ctx context.Context, orderBy string) ([]OrderResponse, error) {
	filter := shared.Filter{}
	filter.SetOrderKey(orderBy)

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, orders)
}

// ListFiltered retrieves a page of orders with structured filtering,
// delegated to the store.
func (s *OrderService) ListFiltered(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.SetOrderKey(filter.OrderBy)

	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}
	if filter.TotalMin != nil {
		domainFilter.Filters["total_min"] = *filter.TotalMin
	}
	if filter.TotalMax != nil {
		domainFilter.Filters["total_max"] = *filter.TotalMax
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses, err := s.toResponses(ctx, orders)
	if err != nil {
		return nil, err
	}
	return &shared.Paginated[OrderResponse]{
		Items:    responses,
		Total:    total,
		Page:     domainFilter.Page,
		PageSize: domainFilter.PageSize,
	}, nil
}

// toResponses resolves each order's customer, memoizing lookups so a
// customer with many orders is fetched once per call.
func (s *OrderService) toResponses(ctx context.Context, orders []trade.Order) ([]OrderResponse, error) {
	customers := make(map[uuid.UUID]*partner.Customer)
	responses := make([]OrderResponse, len(orders))

	for i := range orders {
		customer, ok := customers[orders[i].CustomerID]
		if !ok {
			var err error
			customer, err = s.customerRepo.FindByID(ctx, orders[i].CustomerID)
			if err != nil {
				return nil, err
			}
			customers[orders[i].CustomerID] = customer
		}
		responses[i] = ToOrderResponse(&orders[i], customer)
	}

	return responses, nil
}
