package models

import (
	"github.com/crm/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for customers
type CustomerModel struct {
	BaseModel
	Name  string `gorm:"size:100;not null"`
	Email string `gorm:"size:254;not null;uniqueIndex"`
	Phone string `gorm:"size:20"`
}

// TableName returns the table name for CustomerModel
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts CustomerModel to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
	}
}

// CustomerModelFromDomain creates a CustomerModel from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	model := &CustomerModel{
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
	model.FromDomainBaseEntity(c.BaseEntity)
	return model
}
