package trade

import (
	"context"
	"testing"
	"time"

	"github.com/crm/backend/internal/domain/catalog"
	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*partner.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) InTransaction(ctx context.Context, fn func(repo partner.CustomerRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newOrderFixtures(t *testing.T) (*partner.Customer, []catalog.Product) {
	t.Helper()
	customer := partner.NewCustomer("Alice Smith", "alice@example.com", "+1234567890")
	products := []catalog.Product{
		*catalog.NewProduct("Laptop", decimal.RequireFromString("1200.50"), 10),
		*catalog.NewProduct("Phone", decimal.RequireFromString("800.25"), 5),
	}
	return customer, products
}

func TestOrderService_Create(t *testing.T) {
	t.Run("valid order snapshots product prices into the total", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, products := newOrderFixtures(t)
		ids := []uuid.UUID{products[0].ID, products[1].ID}

		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		productRepo.On("FindByIDs", mock.Anything, ids).Return(products, nil)
		orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

		result, err := service.Create(context.Background(), CreateOrderRequest{
			CustomerID: customer.ID,
			ProductIDs: ids,
		})

		require.NoError(t, err)
		require.NotNil(t, result.Order)
		assert.Empty(t, result.Errors)
		assert.Equal(t, "2000.75", result.Order.TotalAmount.String())
		assert.Equal(t, customer.Email, result.Order.Customer.Email)
		assert.Len(t, result.Order.Products, 2)
		orderRepo.AssertExpectations(t)
	})

	t.Run("unknown customer fails before product checks", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customerRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		result, err := service.Create(context.Background(), CreateOrderRequest{
			CustomerID: uuid.New(),
			ProductIDs: []uuid.UUID{uuid.New()},
		})

		require.NoError(t, err)
		assert.Nil(t, result.Order)
		assert.Equal(t, []string{MsgInvalidCustomerID}, result.Errors)
		productRepo.AssertNotCalled(t, "FindByIDs")
		orderRepo.AssertNotCalled(t, "Save")
	})

	t.Run("empty product list never touches the store", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, _ := newOrderFixtures(t)
		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		result, err := service.Create(context.Background(), CreateOrderRequest{
			CustomerID: customer.ID,
			ProductIDs: nil,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Order)
		assert.Equal(t, []string{MsgNoProducts}, result.Errors)
		productRepo.AssertNotCalled(t, "FindByIDs")
		orderRepo.AssertNotCalled(t, "Save")
	})

	t.Run("one unknown ID among valid ones rejects the whole order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, products := newOrderFixtures(t)
		ids := []uuid.UUID{products[0].ID, uuid.New()}

		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		productRepo.On("FindByIDs", mock.Anything, ids).Return(products[:1], nil)

		result, err := service.Create(context.Background(), CreateOrderRequest{
			CustomerID: customer.ID,
			ProductIDs: ids,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Order)
		assert.Equal(t, []string{MsgInvalidProductIDs}, result.Errors)
		orderRepo.AssertNotCalled(t, "Save")
	})

	t.Run("explicit order date is preserved", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, products := newOrderFixtures(t)
		ids := []uuid.UUID{products[0].ID, products[1].ID}
		orderDate := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		productRepo.On("FindByIDs", mock.Anything, ids).Return(products, nil)
		orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

		result, err := service.Create(context.Background(), CreateOrderRequest{
			CustomerID: customer.ID,
			ProductIDs: ids,
			OrderDate:  &orderDate,
		})

		require.NoError(t, err)
		require.NotNil(t, result.Order)
		assert.True(t, orderDate.Equal(result.Order.OrderDate))
	})

	t.Run("omitted order date defaults to now", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, products := newOrderFixtures(t)
		ids := []uuid.UUID{products[0].ID, products[1].ID}

		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		productRepo.On("FindByIDs", mock.Anything, ids).Return(products, nil)
		orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)

		before := time.Now()
		result, err := service.Create(context.Background(), CreateOrderRequest{
			CustomerID: customer.ID,
			ProductIDs: ids,
		})
		after := time.Now()

		require.NoError(t, err)
		require.NotNil(t, result.Order)
		assert.False(t, result.Order.OrderDate.Before(before))
		assert.False(t, result.Order.OrderDate.After(after))
	})

	t.Run("store failure surfaces as error", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, products := newOrderFixtures(t)
		ids := []uuid.UUID{products[0].ID, products[1].ID}

		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		productRepo.On("FindByIDs", mock.Anything, ids).Return(products, nil)
		orderRepo.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)

		result, err := service.Create(context.Background(), CreateOrderRequest{
			CustomerID: customer.ID,
			ProductIDs: ids,
		})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestOrderService_List(t *testing.T) {
	t.Run("descending sort key is passed to the store", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, products := newOrderFixtures(t)
		order := trade.NewOrder(customer.ID, products, time.Now())

		orderRepo.On("FindAll", mock.Anything, shared.Filter{OrderBy: "total_amount", OrderDir: "desc"}).
			Return([]trade.Order{*order}, nil)
		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		responses, err := service.List(context.Background(), "-total_amount")

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "2000.75", responses[0].TotalAmount.String())
		orderRepo.AssertExpectations(t)
	})

	t.Run("shared customer is fetched once", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, products := newOrderFixtures(t)
		orders := []trade.Order{
			*trade.NewOrder(customer.ID, products[:1], time.Now()),
			*trade.NewOrder(customer.ID, products[1:], time.Now()),
		}

		orderRepo.On("FindAll", mock.Anything, mock.Anything).Return(orders, nil)
		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil).Once()

		responses, err := service.List(context.Background(), "")

		require.NoError(t, err)
		assert.Len(t, responses, 2)
		customerRepo.AssertExpectations(t)
	})
}

func TestOrderService_ListFiltered(t *testing.T) {
	t.Run("pagination defaults and filters are forwarded", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, customerRepo, productRepo)

		customer, _ := newOrderFixtures(t)
		totalMin := decimal.RequireFromString("100")

		expected := shared.Filter{
			Page:     1,
			PageSize: 20,
			Filters: map[string]any{
				"customer_id": customer.ID,
				"total_min":   totalMin,
			},
		}
		orderRepo.On("FindAll", mock.Anything, expected).Return([]trade.Order{}, nil)
		orderRepo.On("Count", mock.Anything, expected).Return(int64(0), nil)

		page, err := service.ListFiltered(context.Background(), OrderListFilter{
			CustomerID: &customer.ID,
			TotalMin:   &totalMin,
		})

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(0), page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.PageSize)
		orderRepo.AssertExpectations(t)
	})
}
