// Package httpapi exposes the REST surface of the QBoard backend.
package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/RahatGithub/QBoard/internal/catalog"
	"github.com/RahatGithub/QBoard/internal/dashboard"
	"github.com/RahatGithub/QBoard/internal/employees"
	"github.com/RahatGithub/QBoard/internal/obs"
	"github.com/RahatGithub/QBoard/internal/orders"
	"github.com/RahatGithub/QBoard/internal/seeder"
	"github.com/RahatGithub/QBoard/internal/users"
)

// App bundles the services behind the REST routes
type App struct {
	Catalog   *catalog.Service
	Orders    *orders.Service
	Users     *users.Service
	Employees *employees.Service
	Dashboard *dashboard.Service
	Seeder    *seeder.Seeder

	log            *zap.Logger
	metrics        *obs.ServerMetrics
	metricsHandler http.Handler
}

// NewApp creates the REST application
func NewApp(
	catalogSvc *catalog.Service,
	orderSvc *orders.Service,
	userSvc *users.Service,
	employeeSvc *employees.Service,
	dashboardSvc *dashboard.Service,
	seedSvc *seeder.Seeder,
	log *zap.Logger,
) *App {
	metrics, metricsHandler := obs.NewServerMetrics("api")
	app := &App{
		Catalog:        catalogSvc,
		Orders:         orderSvc,
		Users:          userSvc,
		Employees:      employeeSvc,
		Dashboard:      dashboardSvc,
		Seeder:         seedSvc,
		log:            log,
		metrics:        metrics,
		metricsHandler: metricsHandler,
	}
	return app
}

// Handler builds the full middleware-wrapped route tree
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	a.handle(mux, "GET /healthz", a.healthHandler)
	mux.Handle("GET /metrics", a.metricsHandler)

	a.handle(mux, "POST /api/auth/register/{$}", a.registerHandler)

	a.handle(mux, "GET /api/products/{$}", a.listProductsHandler)
	a.handle(mux, "POST /api/products/{$}", a.createProductHandler)
	a.handle(mux, "POST /api/products/bulk_create/{$}", a.bulkCreateProductsHandler)
	a.handle(mux, "GET /api/products/{id}/{$}", a.getProductHandler)
	a.handle(mux, "PUT /api/products/{id}/{$}", a.updateProductHandler)
	a.handle(mux, "DELETE /api/products/{id}/{$}", a.deleteProductHandler)

	a.handle(mux, "GET /api/orders/{$}", a.listOrdersHandler)
	a.handle(mux, "POST /api/orders/{$}", a.createOrderHandler)
	a.handle(mux, "GET /api/orders/{id}/{$}", a.getOrderHandler)
	a.handle(mux, "PUT /api/orders/{id}/{$}", a.updateOrderHandler)
	a.handle(mux, "DELETE /api/orders/{id}/{$}", a.deleteOrderHandler)

	a.handle(mux, "GET /api/users/{$}", a.listUsersHandler)
	a.handle(mux, "GET /api/users/{id}/{$}", a.getUserHandler)
	a.handle(mux, "PUT /api/users/{id}/{$}", a.updateUserHandler)
	a.handle(mux, "DELETE /api/users/{id}/{$}", a.deleteUserHandler)

	a.handle(mux, "GET /api/employees/{$}", a.listEmployeesHandler)
	a.handle(mux, "POST /api/employees/{$}", a.createEmployeeHandler)
	a.handle(mux, "POST /api/employees/bulk_create/{$}", a.bulkCreateEmployeesHandler)
	a.handle(mux, "GET /api/employees/{id}/{$}", a.getEmployeeHandler)
	a.handle(mux, "PUT /api/employees/{id}/{$}", a.updateEmployeeHandler)
	a.handle(mux, "DELETE /api/employees/{id}/{$}", a.deleteEmployeeHandler)

	a.handle(mux, "GET /api/dashboard/summary/{$}", a.dashboardSummaryHandler)
	a.handle(mux, "GET /api/dashboard/charts/{$}", a.dashboardChartsHandler)
	a.handle(mux, "GET /api/dashboard/activity/{$}", a.dashboardActivityHandler)

	a.handle(mux, "POST /api/generate/{$}", a.generateHandler)

	return WithRequestID(WithLogging(a.log, mux))
}

// handle registers a route with per-pattern metrics
func (a *App) handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, WithMetrics(a.metrics, pattern, h))
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
