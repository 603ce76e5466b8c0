package graphql

import (
	graphqlgo "github.com/graph-gophers/graphql-go"

	catalogapp "github.com/crm/backend/internal/application/catalog"
	partnerapp "github.com/crm/backend/internal/application/partner"
	tradeapp "github.com/crm/backend/internal/application/trade"
	"github.com/crm/backend/internal/domain/shared"
)

// CustomerResolver resolves the Customer type
type CustomerResolver struct {
	customer partnerapp.CustomerResponse
}

func (r *CustomerResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.customer.ID.String())
}

func (r *CustomerResolver) Name() string {
	return r.customer.Name
}

func (r *CustomerResolver) Email() string {
	return r.customer.Email
}

func (r *CustomerResolver) Phone() *string {
	if r.customer.Phone == "" {
		return nil
	}
	phone := r.customer.Phone
	return &phone
}

func (r *CustomerResolver) CreatedAt() graphqlgo.Time {
	return graphqlgo.Time{Time: r.customer.CreatedAt}
}

// ProductResolver resolves the Product type
type ProductResolver struct {
	product catalogapp.ProductResponse
}

func (r *ProductResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.product.ID.String())
}

func (r *ProductResolver) Name() string {
	return r.product.Name
}

func (r *ProductResolver) Price() float64 {
	return r.product.Price.InexactFloat64()
}

func (r *ProductResolver) Stock() int32 {
	return int32(r.product.Stock)
}

// OrderResolver resolves the Order type
type OrderResolver struct {
	order tradeapp.OrderResponse
}

func (r *OrderResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.order.ID.String())
}

func (r *OrderResolver) Customer() *CustomerResolver {
	return &CustomerResolver{customer: r.order.Customer}
}

func (r *OrderResolver) Products() []*ProductResolver {
	return newProductResolvers(r.order.Products)
}

func (r *OrderResolver) TotalAmount() float64 {
	return r.order.TotalAmount.InexactFloat64()
}

func (r *OrderResolver) OrderDate() graphqlgo.Time {
	return graphqlgo.Time{Time: r.order.OrderDate}
}

func newCustomerResolvers(customers []partnerapp.CustomerResponse) []*CustomerResolver {
	resolvers := make([]*CustomerResolver, len(customers))
	for i, c := range customers {
		resolvers[i] = &CustomerResolver{customer: c}
	}
	return resolvers
}

func newProductResolvers(products []catalogapp.ProductResponse) []*ProductResolver {
	resolvers := make([]*ProductResolver, len(products))
	for i, p := range products {
		resolvers[i] = &ProductResolver{product: p}
	}
	return resolvers
}

func newOrderResolvers(orders []tradeapp.OrderResponse) []*OrderResolver {
	resolvers := make([]*OrderResolver, len(orders))
	for i, o := range orders {
		resolvers[i] = &OrderResolver{order: o}
	}
	return resolvers
}

// CreateCustomerPayloadResolver resolves the createCustomer result
type CreateCustomerPayloadResolver struct {
	result *partnerapp.CreateCustomerResult
}

func (r *CreateCustomerPayloadResolver) Customer() *CustomerResolver {
	if r.result.Customer == nil {
		return nil
	}
	return &CustomerResolver{customer: *r.result.Customer}
}

func (r *CreateCustomerPayloadResolver) Message() string {
	return r.result.Message
}

func (r *CreateCustomerPayloadResolver) Errors() []string {
	return r.result.Errors
}

// BulkCreateCustomersPayloadResolver resolves the bulkCreateCustomers result
type BulkCreateCustomersPayloadResolver struct {
	result *partnerapp.BulkCreateCustomersResult
}

func (r *BulkCreateCustomersPayloadResolver) Customers() []*CustomerResolver {
	return newCustomerResolvers(r.result.Customers)
}

func (r *BulkCreateCustomersPayloadResolver) Errors() []string {
	return r.result.Errors
}

// CreateProductPayloadResolver resolves the createProduct result
type CreateProductPayloadResolver struct {
	result *catalogapp.CreateProductResult
}

func (r *CreateProductPayloadResolver) Product() *ProductResolver {
	if r.result.Product == nil {
		return nil
	}
	return &ProductResolver{product: *r.result.Product}
}

func (r *CreateProductPayloadResolver) Errors() []string {
	return r.result.Errors
}

// CreateOrderPayloadResolver resolves the createOrder result
type CreateOrderPayloadResolver struct {
	result *tradeapp.CreateOrderResult
}

func (r *CreateOrderPayloadResolver) Order() *OrderResolver {
	if r.result.Order == nil {
		return nil
	}
	return &OrderResolver{order: *r.result.Order}
}

func (r *CreateOrderPayloadResolver) Errors() []string {
	return r.result.Errors
}

// CustomerPageResolver resolves a page of customers
type CustomerPageResolver struct {
	page *shared.Paginated[partnerapp.CustomerResponse]
}

func (r *CustomerPageResolver) Items() []*CustomerResolver {
	return newCustomerResolvers(r.page.Items)
}

func (r *CustomerPageResolver) TotalCount() int32 {
	return int32(r.page.Total)
}

func (r *CustomerPageResolver) Page() int32 {
	return int32(r.page.Page)
}

func (r *CustomerPageResolver) PageSize() int32 {
	return int32(r.page.PageSize)
}

// ProductPageResolver resolves a page of products
type ProductPageResolver struct {
	page *shared.Paginated[catalogapp.ProductResponse]
}

func (r *ProductPageResolver) Items() []*ProductResolver {
	return newProductResolvers(r.page.Items)
}

func (r *ProductPageResolver) TotalCount() int32 {
	return int32(r.page.Total)
}

func (r *ProductPageResolver) Page() int32 {
	return int32(r.page.Page)
}

func (r *ProductPageResolver) PageSize() int32 {
	return int32(r.page.PageSize)
}

// OrderPageResolver resolves a page of orders
type OrderPageResolver struct {
	page *shared.Paginated[tradeapp.OrderResponse]
}

func (r *OrderPageResolver) Items() []*OrderResolver {
	return newOrderResolvers(r.page.Items)
}

func (r *OrderPageResolver) TotalCount() int32 {
	return int32(r.page.Total)
}

func (r *OrderPageResolver) Page() int32 {
	return int32(r.page.Page)
}

func (r *OrderPageResolver) PageSize() int32 {
	return int32(r.page.PageSize)
}
