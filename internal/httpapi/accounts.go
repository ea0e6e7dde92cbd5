package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/internal/users"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// User accounts

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *App) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	user, err := a.Users.Register(r.Context(), users.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     types.Role(req.Role),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserView(user))
}

func (a *App) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	filter := storage.UserFilter{Role: types.Role(r.URL.Query().Get("role"))}
	accounts, err := a.Users.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserViews(accounts))
}

func (a *App) getUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	user, err := a.Users.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserView(user))
}

type userUpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (a *App) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	user, err := a.Users.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	user.Username = req.Username
	user.Email = req.Email
	user.Role = types.Role(req.Role)
	if err := a.Users.Update(r.Context(), user); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserView(user))
}

func (a *App) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	if err := a.Users.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Employees

type employeeRequest struct {
	Name             string          `json:"name"`
	Position         string          `json:"position"`
	Department       string          `json:"department"`
	Salary           decimal.Decimal `json:"salary"`
	HireDate         time.Time       `json:"hire_date"`
	PerformanceScore int             `json:"performance_score"`
}

func (req *employeeRequest) toEmployee() *types.Employee {
	return &types.Employee{
		Name:             req.Name,
		Position:         req.Position,
		Department:       req.Department,
		Salary:           req.Salary,
		HireDate:         req.HireDate,
		PerformanceScore: req.PerformanceScore,
	}
}

func (a *App) listEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	filter := storage.EmployeeFilter{
		Department: r.URL.Query().Get("department"),
		Position:   r.URL.Query().Get("position"),
	}
	staff, err := a.Employees.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeViews(staff))
}

func (a *App) createEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	employee := req.toEmployee()
	if err := a.Employees.Create(r.Context(), employee); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeView(employee))
}

// bulkCreateEmployeesHandler accepts either a single object or a list
func (a *App) bulkCreateEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	var reqs []employeeRequest
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		if err := json.Unmarshal(raw, &reqs); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
	} else {
		var single employeeRequest
		if err := json.Unmarshal(raw, &single); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		reqs = []employeeRequest{single}
	}

	batch := make([]*types.Employee, len(reqs))
	for i := range reqs {
		batch[i] = reqs[i].toEmployee()
	}
	if err := a.Employees.BulkCreate(r.Context(), batch); err != nil {
		writeDomainError(w, err)
		return
	}
	views := make([]employeeView, len(batch))
	for i, employee := range batch {
		views[i] = toEmployeeView(employee)
	}
	writeJSON(w, http.StatusCreated, views)
}

func (a *App) getEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	employee, err := a.Employees.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeView(employee))
}

func (a *App) updateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	employee := req.toEmployee()
	employee.ID = id
	if err := a.Employees.Update(r.Context(), employee); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeView(employee))
}

func (a *App) deleteEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	if err := a.Employees.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
