package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/internal/dashboard"
	"github.com/RahatGithub/QBoard/internal/seeder"
)

func (a *App) dashboardSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Dashboard.Summary(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *App) dashboardChartsHandler(w http.ResponseWriter, r *http.Request) {
	charts, err := a.Dashboard.Charts(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toChartsView(charts))
}

type monthCountView struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type topProductView struct {
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	OrderCount int64           `json:"order_count"`
}

type chartsView struct {
	OrdersPerMonth []monthCountView `json:"orders_per_month"`
	TopProducts    []topProductView `json:"top_products"`
}

func toChartsView(charts *dashboard.Charts) chartsView {
	view := chartsView{
		OrdersPerMonth: make([]monthCountView, len(charts.OrdersPerMonth)),
		TopProducts:    make([]topProductView, len(charts.TopProducts)),
	}
	for i, mc := range charts.OrdersPerMonth {
		view.OrdersPerMonth[i] = monthCountView{Month: mc.Month, Count: mc.Count}
	}
	for i, tp := range charts.TopProducts {
		view.TopProducts[i] = topProductView{
			ProductID:  tp.ProductID,
			Name:       tp.Name,
			Category:   tp.Category,
			Price:      tp.Price,
			OrderCount: tp.OrderCount,
		}
	}
	return view
}

func (a *App) dashboardActivityHandler(w http.ResponseWriter, r *http.Request) {
	activity, err := a.Dashboard.Activity(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityView(activity))
}

// activityView maps domain entities to wire shapes
type activityView struct {
	RecentOrders    []orderView    `json:"recent_orders"`
	RecentUsers     []userView     `json:"recent_users"`
	RecentEmployees []employeeView `json:"recent_employees"`
}

func toActivityView(activity *dashboard.Activity) activityView {
	return activityView{
		RecentOrders:    toOrderViews(activity.RecentOrders),
		RecentUsers:     toUserViews(activity.RecentUsers),
		RecentEmployees: toEmployeeViews(activity.RecentEmployees),
	}
}

type generateRequest struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

func (a *App) generateHandler(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Amount <= 0 {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "amount must be positive")
		return
	}

	result, err := a.Seeder.Seed(r.Context(), seeder.Kind(req.Type), req.Amount)
	if errors.Is(err, seeder.ErrUnknownKind) {
		writeJSONError(w, http.StatusBadRequest, "unknown_type", err.Error())
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
