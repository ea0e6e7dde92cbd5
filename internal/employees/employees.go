// Package employees manages staff records, a plain CRUD collaborator with
// no relationship to orders or stock.
package employees

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// Service provides employee operations over the storage layer
type Service struct {
	db  storage.Storage
	log *zap.Logger
}

// NewService creates an employee service
func NewService(db storage.Storage, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Create validates and persists a new employee record
func (s *Service) Create(ctx context.Context, employee *types.Employee) error {
	if err := employee.Validate(); err != nil {
		return err
	}
	return s.db.CreateEmployee(ctx, employee)
}

// BulkCreate persists a batch of employee records in one transaction
func (s *Service) BulkCreate(ctx context.Context, batch []*types.Employee) error {
	for _, employee := range batch {
		if err := employee.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, employee := range batch {
		if err := tx.CreateEmployee(ctx, employee); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk create: %w", err)
	}

	s.log.Info("employees bulk created", zap.Int("count", len(batch)))
	return nil
}

// Get returns one employee by ID
func (s *Service) Get(ctx context.Context, employeeID int64) (*types.Employee, error) {
	return s.db.GetEmployee(ctx, employeeID)
}

// List returns employees matching the filter
func (s *Service) List(ctx context.Context, filter storage.EmployeeFilter) ([]*types.Employee, error) {
	return s.db.ListEmployees(ctx, filter)
}

// Update validates and persists employee field changes
func (s *Service) Update(ctx context.Context, employee *types.Employee) error {
	if err := employee.Validate(); err != nil {
		return err
	}
	return s.db.UpdateEmployee(ctx, employee)
}

// Delete removes an employee record
func (s *Service) Delete(ctx context.Context, employeeID int64) error {
	return s.db.DeleteEmployee(ctx, employeeID)
}
