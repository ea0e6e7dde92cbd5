package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RahatGithub/QBoard/internal/orders"
	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

type orderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type orderCreateRequest struct {
	UserID int64              `json:"user_id"`
	Status string             `json:"status"`
	Items  []orderItemRequest `json:"items"`
}

// orderUpdateRequest is a partial update: omitted fields stay unchanged
type orderUpdateRequest struct {
	Status *string             `json:"status"`
	Items  *[]orderItemRequest `json:"items"`
}

func toOrderItems(reqs []orderItemRequest) []types.OrderItem {
	items := make([]types.OrderItem, len(reqs))
	for i, req := range reqs {
		items[i] = types.OrderItem{ProductID: req.ProductID, Quantity: req.Quantity}
	}
	return items
}

func (a *App) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	filter := storage.OrderFilter{
		Status: types.OrderStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_user_id", "")
			return
		}
		filter.UserID = userID
	}
	result, err := a.Orders.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderViews(result))
}

func (a *App) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req orderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	order, err := a.Orders.Create(r.Context(), orders.CreateRequest{
		UserID: req.UserID,
		Status: types.OrderStatus(req.Status),
		Items:  toOrderItems(req.Items),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderView(order))
}

func (a *App) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	order, err := a.Orders.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(order))
}

func (a *App) updateOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	var req orderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	update := orders.UpdateRequest{}
	if req.Status != nil {
		status := types.OrderStatus(*req.Status)
		update.Status = &status
	}
	if req.Items != nil {
		items := toOrderItems(*req.Items)
		update.Items = &items
	}

	order, err := a.Orders.Update(r.Context(), id, update)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(order))
}

func (a *App) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	if err := a.Orders.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
