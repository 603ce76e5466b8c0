package graphql

import (
	graphqlgo "github.com/graph-gophers/graphql-go"
)

// SchemaString is the GraphQL SDL for the CRM API.
const SchemaString = `
schema {
	query: Query
	mutation: Mutation
}

scalar Time

type Query {
	allCustomers(orderBy: String): [Customer!]!
	allProducts(orderBy: String): [Product!]!
	allOrders(orderBy: String): [Order!]!

	customer(id: ID!): Customer
	product(id: ID!): Product
	order(id: ID!): Order

	customersFiltered(filter: CustomerFilterInput): CustomerPage!
	productsFiltered(filter: ProductFilterInput): ProductPage!
	ordersFiltered(filter: OrderFilterInput): OrderPage!
}

type Mutation {
	createCustomer(input: CreateCustomerInput!): CreateCustomerPayload!
	bulkCreateCustomers(input: [CreateCustomerInput!]!): BulkCreateCustomersPayload!
	createProduct(input: CreateProductInput!): CreateProductPayload!
	createOrder(input: CreateOrderInput!): CreateOrderPayload!
}

type Customer {
	id: ID!
	name: String!
	email: String!
	phone: String
	createdAt: Time!
}

type Product {
	id: ID!
	name: String!
	price: Float!
	stock: Int!
}

type Order {
	id: ID!
	customer: Customer!
	products: [Product!]!
	totalAmount: Float!
	orderDate: Time!
}

input CreateCustomerInput {
	name: String!
	email: String!
	phone: String
}

input CreateProductInput {
	name: String!
	price: Float!
	stock: Int
}

input CreateOrderInput {
	customerId: ID!
	productIds: [ID!]!
	orderDate: Time
}

type CreateCustomerPayload {
	customer: Customer
	message: String!
	errors: [String!]!
}

type BulkCreateCustomersPayload {
	customers: [Customer!]!
	errors: [String!]!
}

type CreateProductPayload {
	product: Product
	errors: [String!]!
}

type CreateOrderPayload {
	order: Order
	errors: [String!]!
}

input CustomerFilterInput {
	nameContains: String
	email: String
	page: Int
	pageSize: Int
	orderBy: String
}

input ProductFilterInput {
	nameContains: String
	priceMin: Float
	priceMax: Float
	stockMin: Int
	page: Int
	pageSize: Int
	orderBy: String
}

input OrderFilterInput {
	customerId: ID
	totalMin: Float
	totalMax: Float
	page: Int
	pageSize: Int
	orderBy: String
}

type CustomerPage {
	items: [Customer!]!
	totalCount: Int!
	page: Int!
	pageSize: Int!
}

type ProductPage {
	items: [Product!]!
	totalCount: Int!
	page: Int!
	pageSize: Int!
}

type OrderPage {
	items: [Order!]!
	totalCount: Int!
	page: Int!
	pageSize: Int!
}
`

// NewSchema parses the SDL against the resolver. maxDepth caps query
// nesting to keep pathological queries out.
func NewSchema(resolver *Resolver, maxDepth int) (*graphqlgo.Schema, error) {
	return graphqlgo.ParseSchema(SchemaString, resolver, graphqlgo.MaxDepth(maxDepth))
}

// MustNewSchema is like NewSchema but panics on parse errors.
// Intended for startup wiring where a broken schema is fatal.
func MustNewSchema(resolver *Resolver, maxDepth int) *graphqlgo.Schema {
	schema, err := NewSchema(resolver, maxDepth)
	if err != nil {
		panic(err)
	}
	return schema
}
