package partner

import (
	"regexp"

	"github.com/crm/backend/internal/domain/shared"
)

// Validation messages surfaced to API callers. The wording is part of
// the mutation contract, keep in sync with clients.
const (
	MsgEmailAlreadyExists = "Email already exists"
	MsgInvalidPhoneFormat = "Invalid phone format (use +1234567890 or 123-456-7890)"
)

// phonePattern accepts an optional leading +, a digit, then at least
// seven more digits or hyphens. Hyphens count toward the length.
var phonePattern = regexp.MustCompile(`^\+?\d[\d\-]{7,}$`)

// Customer represents a customer in the partner context.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseEntity
	Name  string
	Email string
	Phone string
}

// NewCustomer creates a new customer. Email uniqueness is a store-level
// concern and is checked by the workflow, not here.
func NewCustomer(name, email, phone string) *Customer {
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
	}
}

// ValidPhone reports whether the phone number is acceptable.
// An empty phone is valid since the field is optional.
func ValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}
