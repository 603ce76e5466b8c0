package models

import (
	"time"

	"github.com/crm/backend/internal/domain/catalog"
	"github.com/crm/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for orders. Products are linked
// through the order_products join table.
type OrderModel struct {
	BaseModel
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Customer    CustomerModel   `gorm:"foreignKey:CustomerID"`
	Products    []ProductModel  `gorm:"many2many:order_products"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OrderDate   time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for OrderModel
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts OrderModel to a domain Order
func (m *OrderModel) ToDomain() *trade.Order {
	products := make([]catalog.Product, len(m.Products))
	for i := range m.Products {
		products[i] = *m.Products[i].ToDomain()
	}
	return &trade.Order{
		BaseEntity:  m.BaseModel.ToDomain(),
		CustomerID:  m.CustomerID,
		Products:    products,
		TotalAmount: m.TotalAmount,
		OrderDate:   m.OrderDate,
	}
}

// OrderModelFromDomain creates an OrderModel from a domain Order
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	products := make([]ProductModel, len(o.Products))
	for i := range o.Products {
		products[i] = *ProductModelFromDomain(&o.Products[i])
	}
	model := &OrderModel{
		CustomerID:  o.CustomerID,
		Products:    products,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
	}
	model.FromDomainBaseEntity(o.BaseEntity)
	return model
}
