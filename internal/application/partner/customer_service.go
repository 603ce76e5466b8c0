package partner

import (
	"context"
	"fmt"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Mutation result messages. Part of the API contract.
const (
	MsgValidationFailed = "Validation failed"
	MsgCustomerCreated  = "Customer created successfully"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer. Both validation checks always run so
// the caller sees every violation at once; any violation means nothing
// is persisted. Expected validation failures are reported through the
// result, never as an error.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CreateCustomerResult, error) {
	errs := []string{}

	exists, err := s.customerRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		errs = append(errs, partner.MsgEmailAlreadyExists)
	}

	if !partner.ValidPhone(req.Phone) {
		errs = append(errs, partner.MsgInvalidPhoneFormat)
	}

	if len(errs) > 0 {
		return &CreateCustomerResult{
			Message: MsgValidationFailed,
			Errors:  errs,
		}, nil
	}

	customer := partner.NewCustomer(req.Name, req.Email, req.Phone)
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &CreateCustomerResult{
		Customer: &response,
		Message:  MsgCustomerCreated,
		Errors:   []string{},
	}, nil
}

// BulkCreate creates customers from the given rows inside a single
// transaction. A row that fails validation is skipped and reported as
// "Row <1-based index>: <message>"; it does not abort the batch. An
// unexpected store failure rolls back every row of the batch.
func (s *CustomerService) BulkCreate(ctx context.Context, rows []CreateCustomerRequest) (*BulkCreateCustomersResult, error) {
	result := &BulkCreateCustomersResult{
		Customers: []CustomerResponse{},
		Errors:    []string{},
	}

	err := s.customerRepo.InTransaction(ctx, func(repo partner.CustomerRepository) error {
		for i, row := range rows {
			// ExistsByEmail inside the transaction also sees rows
			// persisted earlier in this batch.
			exists, err := repo.ExistsByEmail(ctx, row.Email)
			if err != nil {
				return err
			}
			if exists {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Row %d: Duplicate email: %s", i+1, row.Email))
				continue
			}

			if !partner.ValidPhone(row.Phone) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Row %d: Invalid phone format for %s", i+1, row.Email))
				continue
			}

			customer := partner.NewCustomer(row.Name, row.Email, row.Phone)
			if err := repo.Save(ctx, customer); err != nil {
				return err
			}
			result.Customers = append(result.Customers, ToCustomerResponse(customer))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves all customers, optionally sorted by the given key.
// A key of the form "-field" sorts descending, matching the API's
// order-by convention; an empty key returns the store's default order.
func (s *CustomerService) List(ctx context.Context, orderBy string) ([]CustomerResponse, error) {
	filter := shared.Filter{}
	filter.SetOrderKey(orderBy)

	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return ToCustomerResponses(customers), nil
}

// ListFiltered retrieves a page of customers with structured
// filtering, delegated to the store. The returned page carries the
// effective page and page size after defaults are applied.
func (s *CustomerService) ListFiltered(ctx context.Context, filter CustomerListFilter) (*shared.Paginated[CustomerResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.SetOrderKey(filter.OrderBy)

	if filter.NameContains != "" {
		domainFilter.Filters["name_contains"] = filter.NameContains
	}
	if filter.EmailExact != "" {
		domainFilter.Filters["email"] = filter.EmailExact
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	return &shared.Paginated[CustomerResponse]{
		Items:    ToCustomerResponses(customers),
		Total:    total,
		Page:     domainFilter.Page,
		PageSize: domainFilter.PageSize,
	}, nil
}
