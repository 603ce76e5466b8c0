package graphql

import (
	"context"
	"errors"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogapp "github.com/crm/backend/internal/application/catalog"
	partnerapp "github.com/crm/backend/internal/application/partner"
	tradeapp "github.com/crm/backend/internal/application/trade"
	"github.com/crm/backend/internal/domain/shared"
)

// Resolver is the root resolver. All fields delegate to the
// application services.
type Resolver struct {
	customers *partnerapp.CustomerService
	products  *catalogapp.ProductService
	orders    *tradeapp.OrderService
}

// NewResolver creates the root resolver
func NewResolver(
	customers *partnerapp.CustomerService,
	products *catalogapp.ProductService,
	orders *tradeapp.OrderService,
) *Resolver {
	return &Resolver{
		customers: customers,
		products:  products,
		orders:    orders,
	}
}

type orderByArgs struct {
	OrderBy *string
}

type idArgs struct {
	ID graphqlgo.ID
}

func orderKey(args orderByArgs) string {
	if args.OrderBy == nil {
		return ""
	}
	return *args.OrderBy
}

// AllCustomers resolves allCustomers
func (r *Resolver) AllCustomers(ctx context.Context, args orderByArgs) ([]*CustomerResolver, error) {
	customers, err := r.customers.List(ctx, orderKey(args))
	if err != nil {
		return nil, err
	}
	return newCustomerResolvers(customers), nil
}

// AllProducts resolves allProducts
func (r *Resolver) AllProducts(ctx context.Context, args orderByArgs) ([]*ProductResolver, error) {
	products, err := r.products.List(ctx, orderKey(args))
	if err != nil {
		return nil, err
	}
	return newProductResolvers(products), nil
}

// AllOrders resolves allOrders
func (r *Resolver) AllOrders(ctx context.Context, args orderByArgs) ([]*OrderResolver, error) {
	orders, err := r.orders.List(ctx, orderKey(args))
	if err != nil {
		return nil, err
	}
	return newOrderResolvers(orders), nil
}

// Customer resolves a single customer by ID. Unknown or malformed IDs
// resolve to null rather than a top-level error.
func (r *Resolver) Customer(ctx context.Context, args idArgs) (*CustomerResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, nil
	}
	customer, err := r.customers.GetByID(ctx, id)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &CustomerResolver{customer: *customer}, nil
}

// Product resolves a single product by ID
func (r *Resolver) Product(ctx context.Context, args idArgs) (*ProductResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, nil
	}
	product, err := r.products.GetByID(ctx, id)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &ProductResolver{product: *product}, nil
}

// Order resolves a single order by ID
func (r *Resolver) Order(ctx context.Context, args idArgs) (*OrderResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, nil
	}
	order, err := r.orders.GetByID(ctx, id)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &OrderResolver{order: *order}, nil
}

type customerFilterInput struct {
	NameContains *string
	Email        *string
	Page         *int32
	PageSize     *int32
	OrderBy      *string
}

// CustomersFiltered resolves customersFiltered
func (r *Resolver) CustomersFiltered(ctx context.Context, args struct{ Filter *customerFilterInput }) (*CustomerPageResolver, error) {
	filter := partnerapp.CustomerListFilter{}
	if f := args.Filter; f != nil {
		filter.NameContains = strValue(f.NameContains)
		filter.EmailExact = strValue(f.Email)
		filter.Page = intValue(f.Page)
		filter.PageSize = intValue(f.PageSize)
		filter.OrderBy = strValue(f.OrderBy)
	}

	page, err := r.customers.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &CustomerPageResolver{page: page}, nil
}

type productFilterInput struct {
	NameContains *string
	PriceMin     *float64
	PriceMax     *float64
	StockMin     *int32
	Page         *int32
	PageSize     *int32
	OrderBy      *string
}

// ProductsFiltered resolves productsFiltered
func (r *Resolver) ProductsFiltered(ctx context.Context, args struct{ Filter *productFilterInput }) (*ProductPageResolver, error) {
	filter := catalogapp.ProductListFilter{}
	if f := args.Filter; f != nil {
		filter.NameContains = strValue(f.NameContains)
		filter.Page = intValue(f.Page)
		filter.PageSize = intValue(f.PageSize)
		filter.OrderBy = strValue(f.OrderBy)
		if f.PriceMin != nil {
			d := decimal.NewFromFloat(*f.PriceMin)
			filter.PriceMin = &d
		}
		if f.PriceMax != nil {
			d := decimal.NewFromFloat(*f.PriceMax)
			filter.PriceMax = &d
		}
		if f.StockMin != nil {
			n := int(*f.StockMin)
			filter.StockMin = &n
		}
	}

	page, err := r.products.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ProductPageResolver{page: page}, nil
}

type orderFilterInput struct {
	CustomerID *graphqlgo.ID
	TotalMin   *float64
	TotalMax   *float64
	Page       *int32
	PageSize   *int32
	OrderBy    *string
}

// OrdersFiltered resolves ordersFiltered
func (r *Resolver) OrdersFiltered(ctx context.Context, args struct{ Filter *orderFilterInput }) (*OrderPageResolver, error) {
	filter := tradeapp.OrderListFilter{}
	if f := args.Filter; f != nil {
		filter.Page = intValue(f.Page)
		filter.PageSize = intValue(f.PageSize)
		filter.OrderBy = strValue(f.OrderBy)
		if f.CustomerID != nil {
			if id, err := uuid.Parse(string(*f.CustomerID)); err == nil {
				filter.CustomerID = &id
			}
		}
		if f.TotalMin != nil {
			d := decimal.NewFromFloat(*f.TotalMin)
			filter.TotalMin = &d
		}
		if f.TotalMax != nil {
			d := decimal.NewFromFloat(*f.TotalMax)
			filter.TotalMax = &d
		}
	}

	page, err := r.orders.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &OrderPageResolver{page: page}, nil
}

type createCustomerInput struct {
	Name  string
	Email string
	Phone *string
}

func (in createCustomerInput) toRequest() partnerapp.CreateCustomerRequest {
	return partnerapp.CreateCustomerRequest{
		Name:  in.Name,
		Email: in.Email,
		Phone: strValue(in.Phone),
	}
}

// CreateCustomer resolves the createCustomer mutation
func (r *Resolver) CreateCustomer(ctx context.Context, args struct{ Input createCustomerInput }) (*CreateCustomerPayloadResolver, error) {
	result, err := r.customers.Create(ctx, args.Input.toRequest())
	if err != nil {
		return nil, err
	}
	return &CreateCustomerPayloadResolver{result: result}, nil
}

// BulkCreateCustomers resolves the bulkCreateCustomers mutation
func (r *Resolver) BulkCreateCustomers(ctx context.Context, args struct{ Input []createCustomerInput }) (*BulkCreateCustomersPayloadResolver, error) {
	requests := make([]partnerapp.CreateCustomerRequest, len(args.Input))
	for i, in := range args.Input {
		requests[i] = in.toRequest()
	}

	result, err := r.customers.BulkCreate(ctx, requests)
	if err != nil {
		return nil, err
	}
	return &BulkCreateCustomersPayloadResolver{result: result}, nil
}

type createProductInput struct {
	Name  string
	Price float64
	Stock *int32
}

// CreateProduct resolves the createProduct mutation
func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Input createProductInput }) (*CreateProductPayloadResolver, error) {
	req := catalogapp.CreateProductRequest{
		Name:  args.Input.Name,
		Price: decimal.NewFromFloat(args.Input.Price),
		Stock: int(int32Value(args.Input.Stock)),
	}

	result, err := r.products.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return &CreateProductPayloadResolver{result: result}, nil
}

type createOrderInput struct {
	CustomerID graphqlgo.ID
	ProductIDs []graphqlgo.ID
	OrderDate  *graphqlgo.Time
}

// CreateOrder resolves the createOrder mutation
func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Input createOrderInput }) (*CreateOrderPayloadResolver, error) {
	customerID, err := uuid.Parse(string(args.Input.CustomerID))
	if err != nil {
		return &CreateOrderPayloadResolver{
			result: &tradeapp.CreateOrderResult{Errors: []string{tradeapp.MsgInvalidCustomerID}},
		}, nil
	}

	// Unparseable product IDs keep their slot as the nil UUID so the
	// service's count check still rejects them.
	productIDs := make([]uuid.UUID, len(args.Input.ProductIDs))
	for i, raw := range args.Input.ProductIDs {
		if id, parseErr := uuid.Parse(string(raw)); parseErr == nil {
			productIDs[i] = id
		}
	}

	req := tradeapp.CreateOrderRequest{
		CustomerID: customerID,
		ProductIDs: productIDs,
	}
	if args.Input.OrderDate != nil {
		req.OrderDate = &args.Input.OrderDate.Time
	}

	result, err := r.orders.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return &CreateOrderPayloadResolver{result: result}, nil
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(n *int32) int {
	if n == nil {
		return 0
	}
	return int(*n)
}

func int32Value(n *int32) int32 {
	if n == nil {
		return 0
	}
	return *n
}
