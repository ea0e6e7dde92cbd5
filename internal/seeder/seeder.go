// Package seeder generates synthetic demo data for a QBoard database.
//
// Generation is driven by entity kind so callers can seed one table at a
// time. Order seeding goes through the order service so every generated
// order observes the same stock rules as a real one; orders that happen to
// overdraw stock are skipped, not failed.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/RahatGithub/QBoard/internal/orders"
	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/internal/users"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// Kind names a seedable entity type
type Kind string

const (
	KindUsers     Kind = "users"
	KindEmployees Kind = "employees"
	KindProducts  Kind = "products"
	KindOrders    Kind = "orders"
)

// ErrUnknownKind is returned for a kind outside the seedable set
var ErrUnknownKind = errors.New("unknown seed kind")

var productCategories = []string{"Electronics", "Books", "Clothing", "Home", "Toys", "Sports"}

var departments = []string{"Engineering", "Sales", "Marketing", "Support", "Finance"}

// Result reports what a seeding run produced
type Result struct {
	Kind      Kind `json:"kind"`
	Requested int  `json:"requested"`
	Created   int  `json:"created"`
	Skipped   int  `json:"skipped"` // Orders dropped for insufficient stock
}

// Seeder generates fake entities into the store
type Seeder struct {
	db     storage.Storage
	orders *orders.Service
	users  *users.Service
	log    *zap.Logger
	faker  *gofakeit.Faker
}

// New creates a seeder with a fixed-seed faker so runs are reproducible
func New(db storage.Storage, orderSvc *orders.Service, userSvc *users.Service, log *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		orders: orderSvc,
		users:  userSvc,
		log:    log,
		faker:  gofakeit.New(0),
	}
}

// Seed generates count entities of the given kind
func (s *Seeder) Seed(ctx context.Context, kind Kind, count int) (*Result, error) {
	switch kind {
	case KindUsers:
		return s.seedUsers(ctx, count)
	case KindEmployees:
		return s.seedEmployees(ctx, count)
	case KindProducts:
		return s.seedProducts(ctx, count)
	case KindOrders:
		return s.seedOrders(ctx, count)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// SeedAll populates every table. Independent tables are seeded concurrently;
// orders wait for users and products to exist.
func (s *Seeder) SeedAll(ctx context.Context, perKind int) ([]*Result, error) {
	var userResult, employeeResult, productResult *Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		userResult, err = s.seedUsers(gctx, perKind)
		return err
	})
	g.Go(func() error {
		var err error
		employeeResult, err = s.seedEmployees(gctx, perKind)
		return err
	})
	g.Go(func() error {
		var err error
		productResult, err = s.seedProducts(gctx, perKind)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	orderResult, err := s.seedOrders(ctx, perKind)
	if err != nil {
		return nil, err
	}

	return []*Result{userResult, employeeResult, productResult, orderResult}, nil
}

func (s *Seeder) seedUsers(ctx context.Context, count int) (*Result, error) {
	result := &Result{Kind: KindUsers, Requested: count}
	for i := 0; i < count; i++ {
		username := fmt.Sprintf("%s%d", s.faker.Username(), s.faker.Number(100, 999))
		_, err := s.users.Register(ctx, users.RegisterRequest{
			Username: username,
			Email:    s.faker.Email(),
			Password: s.faker.Password(true, true, true, false, false, 12),
			Role:     types.RoleUser,
		})
		if errors.Is(err, users.ErrUsernameTaken) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Created++
	}
	s.log.Info("seeded users", zap.Int("created", result.Created))
	return result, nil
}

func (s *Seeder) seedEmployees(ctx context.Context, count int) (*Result, error) {
	result := &Result{Kind: KindEmployees, Requested: count}
	for i := 0; i < count; i++ {
		employee := &types.Employee{
			Name:             s.faker.Name(),
			Position:         s.faker.JobTitle(),
			Department:       departments[s.faker.Number(0, len(departments)-1)],
			Salary:           randomDecimal(s.faker, 30000, 150000),
			HireDate:         s.faker.DateRange(yearsAgo(5), yearsAgo(0)),
			PerformanceScore: s.faker.Number(1, 10),
		}
		if err := s.db.CreateEmployee(ctx, employee); err != nil {
			return nil, err
		}
		result.Created++
	}
	s.log.Info("seeded employees", zap.Int("created", result.Created))
	return result, nil
}

func (s *Seeder) seedProducts(ctx context.Context, count int) (*Result, error) {
	result := &Result{Kind: KindProducts, Requested: count}
	for i := 0; i < count; i++ {
		product := &types.Product{
			Name:     s.faker.ProductName(),
			Category: productCategories[s.faker.Number(0, len(productCategories)-1)],
			Price:    randomDecimal(s.faker, 1, 500),
			Stock:    int64(s.faker.Number(0, 200)),
		}
		if err := s.db.CreateProduct(ctx, product); err != nil {
			return nil, err
		}
		result.Created++
	}
	s.log.Info("seeded products", zap.Int("created", result.Created))
	return result, nil
}

// seedOrders builds orders from existing users and products. Each order gets
// one to three lines; an order that cannot be satisfied from current stock is
// counted as skipped and generation moves on.
func (s *Seeder) seedOrders(ctx context.Context, count int) (*Result, error) {
	result := &Result{Kind: KindOrders, Requested: count}

	accounts, err := s.db.ListUsers(ctx, storage.UserFilter{})
	if err != nil {
		return nil, err
	}
	products, err := s.db.ListProducts(ctx, storage.ProductFilter{})
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 || len(products) == 0 {
		return nil, errors.New("order seeding requires existing users and products")
	}

	statuses := []types.OrderStatus{types.OrderPending, types.OrderCompleted, types.OrderCancelled}

	for i := 0; i < count; i++ {
		lineCount := s.faker.Number(1, 3)
		items := make([]types.OrderItem, 0, lineCount)
		seen := make(map[int64]bool, lineCount)
		for len(items) < lineCount {
			product := products[s.faker.Number(0, len(products)-1)]
			if seen[product.ID] {
				continue
			}
			seen[product.ID] = true
			items = append(items, types.OrderItem{
				ProductID: product.ID,
				Quantity:  int64(s.faker.Number(1, 5)),
			})
		}

		_, err := s.orders.Create(ctx, orders.CreateRequest{
			UserID: accounts[s.faker.Number(0, len(accounts)-1)].ID,
			Status: statuses[s.faker.Number(0, len(statuses)-1)],
			Items:  items,
		})

		var insufficient *types.InsufficientStockError
		if errors.As(err, &insufficient) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Created++
	}

	s.log.Info("seeded orders",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// randomDecimal picks a price-like value with two decimal places
func randomDecimal(f *gofakeit.Faker, min, max int) decimal.Decimal {
	cents := f.Number(min*100, max*100)
	return decimal.New(int64(cents), -2)
}

func yearsAgo(n int) time.Time {
	return time.Now().AddDate(-n, 0, 0)
}
