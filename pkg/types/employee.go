package types

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a staff record. It has no relationship to orders or stock and
// exists as a plain CRUD entity.
type Employee struct {
	ID               int64
	Name             string
	Position         string
	Department       string
	Salary           decimal.Decimal
	HireDate         time.Time
	PerformanceScore int
}

// Validate checks employee field constraints.
func (e *Employee) Validate() error {
	if e.Name == "" {
		return errors.New("employee name cannot be empty")
	}

	if e.Salary.IsNegative() {
		return errors.New("employee salary cannot be negative")
	}

	return nil
}
