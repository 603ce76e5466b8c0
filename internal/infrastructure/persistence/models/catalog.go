package models

import (
	"github.com/crm/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for products
type ProductModel struct {
	BaseModel
	Name  string          `gorm:"size:200;not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock int             `gorm:"not null;default:0"`
}

// TableName returns the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts ProductModel to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Price:      m.Price,
		Stock:      m.Stock,
	}
}

// ProductModelFromDomain creates a ProductModel from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	model := &ProductModel{
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
	model.FromDomainBaseEntity(p.BaseEntity)
	return model
}
