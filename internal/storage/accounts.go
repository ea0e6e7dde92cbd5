package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/RahatGithub/QBoard/pkg/types"
)

// User operations

// createUserWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createUserWithQuerier(ctx context.Context, q querier, user *types.User) error {
	query := `
		INSERT INTO users (username, email, role, password_hash, date_joined)
		VALUES (?, ?, ?, ?, ?)
	`
	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now().UTC()
	}
	result, err := q.ExecContext(ctx, query,
		user.Username, user.Email, string(user.Role), user.PasswordHash, user.DateJoined)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (s *SQLiteStorage) CreateUser(ctx context.Context, user *types.User) error {
	return s.createUserWithQuerier(ctx, s.querier(), user)
}

// scanUser reads one user row
func scanUser(row interface{ Scan(...interface{}) error }) (*types.User, error) {
	var user types.User
	var role string
	err := row.Scan(&user.ID, &user.Username, &user.Email, &role, &user.PasswordHash, &user.DateJoined)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Role = types.Role(role)
	return &user, nil
}

const userColumns = "id, username, email, role, password_hash, date_joined"

// getUserWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getUserWithQuerier(ctx context.Context, q querier, userID int64) (*types.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	return scanUser(q.QueryRowContext(ctx, query, userID))
}

func (s *SQLiteStorage) GetUser(ctx context.Context, userID int64) (*types.User, error) {
	return s.getUserWithQuerier(ctx, s.querier(), userID)
}

// getUserByUsernameWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getUserByUsernameWithQuerier(ctx context.Context, q querier, username string) (*types.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE username = ?"
	return scanUser(q.QueryRowContext(ctx, query, username))
}

func (s *SQLiteStorage) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return s.getUserByUsernameWithQuerier(ctx, s.querier(), username)
}

// updateUserWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) updateUserWithQuerier(ctx context.Context, q querier, user *types.User) error {
	query := `
		UPDATE users
		SET username = ?, email = ?, role = ?, password_hash = ?
		WHERE id = ?
	`
	result, err := q.ExecContext(ctx, query,
		user.Username, user.Email, string(user.Role), user.PasswordHash, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) UpdateUser(ctx context.Context, user *types.User) error {
	return s.updateUserWithQuerier(ctx, s.querier(), user)
}

// deleteUserWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) deleteUserWithQuerier(ctx context.Context, q querier, userID int64) error {
	result, err := q.ExecContext(ctx, "DELETE FROM users WHERE id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) DeleteUser(ctx context.Context, userID int64) error {
	return s.deleteUserWithQuerier(ctx, s.querier(), userID)
}

// listUsersWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listUsersWithQuerier(ctx context.Context, q querier, filter UserFilter) ([]*types.User, error) {
	query := "SELECT " + userColumns + " FROM users"
	args := []interface{}{}
	if filter.Role != "" {
		query += " WHERE role = ?"
		args = append(args, string(filter.Role))
	}
	if filter.Recent {
		query += " ORDER BY date_joined DESC, id DESC"
	} else {
		query += " ORDER BY id"
	}
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []*types.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLiteStorage) ListUsers(ctx context.Context, filter UserFilter) ([]*types.User, error) {
	return s.listUsersWithQuerier(ctx, s.querier(), filter)
}

// Employee operations

// createEmployeeWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createEmployeeWithQuerier(ctx context.Context, q querier, employee *types.Employee) error {
	query := `
		INSERT INTO employees (name, position, department, salary, hire_date, performance_score)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := q.ExecContext(ctx, query,
		employee.Name, employee.Position, employee.Department,
		employee.Salary.String(), employee.HireDate, employee.PerformanceScore)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	employee.ID = id
	return nil
}

func (s *SQLiteStorage) CreateEmployee(ctx context.Context, employee *types.Employee) error {
	return s.createEmployeeWithQuerier(ctx, s.querier(), employee)
}

// scanEmployee reads one employee row
func scanEmployee(row interface{ Scan(...interface{}) error }) (*types.Employee, error) {
	var employee types.Employee
	var salary string
	err := row.Scan(&employee.ID, &employee.Name, &employee.Position, &employee.Department,
		&salary, &employee.HireDate, &employee.PerformanceScore)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	employee.Salary, err = parseDecimal(salary)
	if err != nil {
		return nil, fmt.Errorf("invalid stored salary for employee %d: %w", employee.ID, err)
	}
	return &employee, nil
}

const employeeColumns = "id, name, position, department, salary, hire_date, performance_score"

// getEmployeeWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getEmployeeWithQuerier(ctx context.Context, q querier, employeeID int64) (*types.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE id = ?"
	return scanEmployee(q.QueryRowContext(ctx, query, employeeID))
}

func (s *SQLiteStorage) GetEmployee(ctx context.Context, employeeID int64) (*types.Employee, error) {
	return s.getEmployeeWithQuerier(ctx, s.querier(), employeeID)
}

// updateEmployeeWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) updateEmployeeWithQuerier(ctx context.Context, q querier, employee *types.Employee) error {
	query := `
		UPDATE employees
		SET name = ?, position = ?, department = ?, salary = ?, hire_date = ?, performance_score = ?
		WHERE id = ?
	`
	result, err := q.ExecContext(ctx, query,
		employee.Name, employee.Position, employee.Department,
		employee.Salary.String(), employee.HireDate, employee.PerformanceScore, employee.ID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) UpdateEmployee(ctx context.Context, employee *types.Employee) error {
	return s.updateEmployeeWithQuerier(ctx, s.querier(), employee)
}

// deleteEmployeeWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) deleteEmployeeWithQuerier(ctx context.Context, q querier, employeeID int64) error {
	result, err := q.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return s.deleteEmployeeWithQuerier(ctx, s.querier(), employeeID)
}

// listEmployeesWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listEmployeesWithQuerier(ctx context.Context, q querier, filter EmployeeFilter) ([]*types.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees"
	args := []interface{}{}
	where := ""
	if filter.Department != "" {
		where = " WHERE department = ?"
		args = append(args, filter.Department)
	}
	if filter.Position != "" {
		if where == "" {
			where = " WHERE position = ?"
		} else {
			where += " AND position = ?"
		}
		args = append(args, filter.Position)
	}
	query += where
	if filter.Recent {
		query += " ORDER BY hire_date DESC, id DESC"
	} else {
		query += " ORDER BY id"
	}
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var employees []*types.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *SQLiteStorage) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]*types.Employee, error) {
	return s.listEmployeesWithQuerier(ctx, s.querier(), filter)
}

// Transaction delegations for user operations

func (t *sqliteTx) CreateUser(ctx context.Context, user *types.User) error {
	return t.storage.createUserWithQuerier(ctx, t.querier(), user)
}

func (t *sqliteTx) GetUser(ctx context.Context, userID int64) (*types.User, error) {
	return t.storage.getUserWithQuerier(ctx, t.querier(), userID)
}

func (t *sqliteTx) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return t.storage.getUserByUsernameWithQuerier(ctx, t.querier(), username)
}

func (t *sqliteTx) UpdateUser(ctx context.Context, user *types.User) error {
	return t.storage.updateUserWithQuerier(ctx, t.querier(), user)
}

func (t *sqliteTx) DeleteUser(ctx context.Context, userID int64) error {
	return t.storage.deleteUserWithQuerier(ctx, t.querier(), userID)
}

func (t *sqliteTx) ListUsers(ctx context.Context, filter UserFilter) ([]*types.User, error) {
	return t.storage.listUsersWithQuerier(ctx, t.querier(), filter)
}

// Transaction delegations for employee operations

func (t *sqliteTx) CreateEmployee(ctx context.Context, employee *types.Employee) error {
	return t.storage.createEmployeeWithQuerier(ctx, t.querier(), employee)
}

func (t *sqliteTx) GetEmployee(ctx context.Context, employeeID int64) (*types.Employee, error) {
	return t.storage.getEmployeeWithQuerier(ctx, t.querier(), employeeID)
}

func (t *sqliteTx) UpdateEmployee(ctx context.Context, employee *types.Employee) error {
	return t.storage.updateEmployeeWithQuerier(ctx, t.querier(), employee)
}

func (t *sqliteTx) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return t.storage.deleteEmployeeWithQuerier(ctx, t.querier(), employeeID)
}

func (t *sqliteTx) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]*types.Employee, error) {
	return t.storage.listEmployeesWithQuerier(ctx, t.querier(), filter)
}
