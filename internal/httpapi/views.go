package httpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/pkg/types"
)

// Wire representations. Domain types in pkg/types carry no serialization
// concerns; the shapes below define the JSON contract.

type productView struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
}

func toProductView(p *types.Product) productView {
	return productView{ID: p.ID, Name: p.Name, Category: p.Category, Price: p.Price, Stock: p.Stock}
}

func toProductViews(products []*types.Product) []productView {
	views := make([]productView, len(products))
	for i, p := range products {
		views[i] = toProductView(p)
	}
	return views
}

type orderItemView struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type orderView struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Status      string          `json:"status"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []orderItemView `json:"items"`
}

func toOrderView(o *types.Order) orderView {
	items := make([]orderItemView, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemView{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return orderView{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Items:       items,
	}
}

func toOrderViews(orders []*types.Order) []orderView {
	views := make([]orderView, len(orders))
	for i, o := range orders {
		views[i] = toOrderView(o)
	}
	return views
}

type userView struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	DateJoined time.Time `json:"date_joined"`
}

func toUserView(u *types.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email, Role: string(u.Role), DateJoined: u.DateJoined}
}

func toUserViews(accounts []*types.User) []userView {
	views := make([]userView, len(accounts))
	for i, u := range accounts {
		views[i] = toUserView(u)
	}
	return views
}

type employeeView struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Position         string          `json:"position"`
	Department       string          `json:"department"`
	Salary           decimal.Decimal `json:"salary"`
	HireDate         time.Time       `json:"hire_date"`
	PerformanceScore int             `json:"performance_score"`
}

func toEmployeeView(e *types.Employee) employeeView {
	return employeeView{
		ID:               e.ID,
		Name:             e.Name,
		Position:         e.Position,
		Department:       e.Department,
		Salary:           e.Salary,
		HireDate:         e.HireDate,
		PerformanceScore: e.PerformanceScore,
	}
}

func toEmployeeViews(staff []*types.Employee) []employeeView {
	views := make([]employeeView, len(staff))
	for i, e := range staff {
		views[i] = toEmployeeView(e)
	}
	return views
}
