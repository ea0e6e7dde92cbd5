package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahatGithub/QBoard/pkg/types"
)

func TestCreateUser_DuplicateUsername(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := &types.User{Username: "alice", Role: types.RoleUser, PasswordHash: "x"}
	require.NoError(t, storage.CreateUser(ctx, user))

	duplicate := &types.User{Username: "alice", Role: types.RoleAdmin, PasswordHash: "y"}
	assert.ErrorIs(t, storage.CreateUser(ctx, duplicate), ErrAlreadyExists)
}

func TestGetUserByUsername(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := &types.User{Username: "alice", Email: "a@example.com", Role: types.RoleManager, PasswordHash: "x"}
	require.NoError(t, storage.CreateUser(ctx, user))

	retrieved, err := storage.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, types.RoleManager, retrieved.Role)

	_, err = storage.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers_RoleFilter(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	require.NoError(t, storage.CreateUser(ctx, &types.User{Username: "a", Role: types.RoleAdmin, PasswordHash: "x"}))
	require.NoError(t, storage.CreateUser(ctx, &types.User{Username: "b", Role: types.RoleUser, PasswordHash: "x"}))

	admins, err := storage.ListUsers(ctx, UserFilter{Role: types.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "a", admins[0].Username)
}

func TestEmployeeCRUD(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	employee := &types.Employee{
		Name:             "Jordan Smith",
		Position:         "Engineer",
		Department:       "R&D",
		Salary:           decimal.RequireFromString("85000.00"),
		HireDate:         time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		PerformanceScore: 8,
	}
	require.NoError(t, storage.CreateEmployee(ctx, employee))
	assert.Greater(t, employee.ID, int64(0))

	retrieved, err := storage.GetEmployee(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", retrieved.Name)
	assert.True(t, retrieved.Salary.Equal(decimal.RequireFromString("85000.00")))

	retrieved.Position = "Senior Engineer"
	require.NoError(t, storage.UpdateEmployee(ctx, retrieved))

	updated, err := storage.GetEmployee(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Position)

	require.NoError(t, storage.DeleteEmployee(ctx, employee.ID))
	_, err = storage.GetEmployee(ctx, employee.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEmployees_DepartmentFilter(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	require.NoError(t, storage.CreateEmployee(ctx, &types.Employee{Name: "A", Department: "R&D", Salary: decimal.Zero}))
	require.NoError(t, storage.CreateEmployee(ctx, &types.Employee{Name: "B", Department: "Sales", Salary: decimal.Zero}))

	sales, err := storage.ListEmployees(ctx, EmployeeFilter{Department: "Sales"})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "B", sales[0].Name)
}
