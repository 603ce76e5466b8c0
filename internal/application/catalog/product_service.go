package catalog

import (
	"context"

	"github.com/crm/backend/internal/domain/catalog"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// Create creates a new product. Price and stock are validated
// independently so the caller sees every violation at once.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error) {
	errs := []string{}

	if !catalog.ValidPrice(req.Price) {
		errs = append(errs, catalog.MsgPriceNotPositive)
	}
	if !catalog.ValidStock(req.Stock) {
		errs = append(errs, catalog.MsgStockNegative)
	}

	if len(errs) > 0 {
		return &CreateProductResult{Errors: errs}, nil
	}

	product := catalog.NewProduct(req.Name, req.Price, req.Stock)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &CreateProductResult{
		Product: &response,
		Errors:  []string{},
	}, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves all products, optionally sorted by the given key
func (s *ProductService) List(ctx context.Context, orderBy string) ([]ProductResponse, error) {
	filter := shared.Filter{}
	filter.SetOrderKey(orderBy)

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return ToProductResponses(products), nil
}

// ListFiltered retrieves a page of products with structured
// filtering, delegated to the store.
func (s *ProductService) ListFiltered(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
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
	if filter.PriceMin != nil {
		domainFilter.Filters["price_min"] = *filter.PriceMin
	}
	if filter.PriceMax != nil {
		domainFilter.Filters["price_max"] = *filter.PriceMax
	}
	if filter.StockMin != nil {
		domainFilter.Filters["stock_min"] = *filter.StockMin
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	return &shared.Paginated[ProductResponse]{
		Items:    ToProductResponses(products),
		Total:    total,
		Page:     domainFilter.Page,
		PageSize: domainFilter.PageSize,
	}, nil
}
