package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalogapp "github.com/crm/backend/internal/application/catalog"
	partnerapp "github.com/crm/backend/internal/application/partner"
	tradeapp "github.com/crm/backend/internal/application/trade"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/infrastructure/persistence"
)

type customerFixture struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string
}

type productFixture struct {
	Name  string `validate:"required"`
	Price string `validate:"required"`
	Stock int    `validate:"gte=0"`
}

type orderFixture struct {
	CustomerEmail string   `validate:"required,email"`
	ProductNames  []string `validate:"required,min=1"`
	DaysAgo       int      `validate:"gte=0"`
}

var customers = []customerFixture{
	{Name: "Alice Smith", Email: "alice@example.com", Phone: "+1234567890"},
	{Name: "Bob Johnson", Email: "bob@example.com", Phone: "123-456-7890"},
	{Name: "Carol Lee", Email: "carol@example.com"},
}

var products = []productFixture{
	{Name: "Laptop", Price: "1200.50", Stock: 10},
	{Name: "Phone", Price: "800.25", Stock: 25},
	{Name: "Headphones", Price: "149.99", Stock: 50},
	{Name: "Monitor", Price: "329.00", Stock: 15},
}

var orders = []orderFixture{
	{CustomerEmail: "alice@example.com", ProductNames: []string{"Laptop", "Phone"}, DaysAgo: 7},
	{CustomerEmail: "bob@example.com", ProductNames: []string{"Headphones"}, DaysAgo: 2},
	{CustomerEmail: "alice@example.com", ProductNames: []string{"Monitor", "Headphones"}, DaysAgo: 0},
}

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logCfg := logger.DefaultConfig()
	logCfg.Level = logLevel
	logCfg.TimeFormat = "2006-01-02 15:04:05"
	log, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	customerService := partnerapp.NewCustomerService(customerRepo)
	productService := catalogapp.NewProductService(productRepo)
	orderService := tradeapp.NewOrderService(orderRepo, customerRepo, productRepo)

	validate := validator.New()
	ctx := context.Background()

	customersCreated := 0
	for _, f := range customers {
		if err := validate.Struct(f); err != nil {
			log.Fatal("Invalid customer fixture", zap.String("email", f.Email), zap.Error(err))
		}
		result, err := customerService.Create(ctx, partnerapp.CreateCustomerRequest{
			Name:  f.Name,
			Email: f.Email,
			Phone: f.Phone,
		})
		if err != nil {
			log.Fatal("Failed to create customer", zap.String("email", f.Email), zap.Error(err))
		}
		if result.Customer == nil {
			log.Warn("Skipped customer", zap.String("email", f.Email), zap.Strings("errors", result.Errors))
			continue
		}
		customersCreated++
		log.Info("Created customer", zap.String("email", f.Email))
	}

	productIDs := make(map[string]uuid.UUID)
	for _, f := range products {
		if err := validate.Struct(f); err != nil {
			log.Fatal("Invalid product fixture", zap.String("name", f.Name), zap.Error(err))
		}
		price, err := decimal.NewFromString(f.Price)
		if err != nil {
			log.Fatal("Invalid product price", zap.String("name", f.Name), zap.Error(err))
		}
		result, err := productService.Create(ctx, catalogapp.CreateProductRequest{
			Name:  f.Name,
			Price: price,
			Stock: f.Stock,
		})
		if err != nil {
			log.Fatal("Failed to create product", zap.String("name", f.Name), zap.Error(err))
		}
		if result.Product == nil {
			log.Warn("Skipped product", zap.String("name", f.Name), zap.Strings("errors", result.Errors))
			continue
		}
		productIDs[f.Name] = result.Product.ID
		log.Info("Created product", zap.String("name", f.Name))
	}

	ordersCreated := 0
	for i, f := range orders {
		if err := validate.Struct(f); err != nil {
			log.Fatal("Invalid order fixture", zap.Int("index", i), zap.Error(err))
		}
		// Resolve by email rather than remembering IDs from the loop
		// above, so re-running the seeder against an existing database
		// still links orders to the customers created the first time.
		customer, err := customerRepo.FindByEmail(ctx, f.CustomerEmail)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				log.Warn("Order references unknown customer", zap.String("email", f.CustomerEmail))
				continue
			}
			log.Fatal("Failed to look up customer", zap.String("email", f.CustomerEmail), zap.Error(err))
		}
		ids := make([]uuid.UUID, 0, len(f.ProductNames))
		for _, name := range f.ProductNames {
			id, ok := productIDs[name]
			if !ok {
				log.Fatal("Order references unknown product", zap.String("name", name))
			}
			ids = append(ids, id)
		}
		orderDate := time.Now().AddDate(0, 0, -f.DaysAgo)
		result, err := orderService.Create(ctx, tradeapp.CreateOrderRequest{
			CustomerID: customer.ID,
			ProductIDs: ids,
			OrderDate:  &orderDate,
		})
		if err != nil {
			log.Fatal("Failed to create order", zap.Int("index", i), zap.Error(err))
		}
		if result.Order == nil {
			log.Warn("Skipped order", zap.Int("index", i), zap.Strings("errors", result.Errors))
			continue
		}
		ordersCreated++
		log.Info("Created order",
			zap.String("customer", f.CustomerEmail),
			zap.String("total", result.Order.TotalAmount.String()),
		)
	}

	log.Info("Seeding complete",
		zap.Int("customers", customersCreated),
		zap.Int("products", len(productIDs)),
		zap.Int("orders", ordersCreated),
	)
}
