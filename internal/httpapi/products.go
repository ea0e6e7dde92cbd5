package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

type productRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
}

func (req *productRequest) toProduct() *types.Product {
	return &types.Product{Name: req.Name, Category: req.Category, Price: req.Price, Stock: req.Stock}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter := storage.ProductFilter{Category: r.URL.Query().Get("category")}
	products, err := a.Catalog.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductViews(products))
}

func (a *App) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	product := req.toProduct()
	if err := a.Catalog.Create(r.Context(), product); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductView(product))
}

// bulkCreateProductsHandler accepts either a single object or a list
func (a *App) bulkCreateProductsHandler(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	var reqs []productRequest
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		if err := json.Unmarshal(raw, &reqs); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
	} else {
		var single productRequest
		if err := json.Unmarshal(raw, &single); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		reqs = []productRequest{single}
	}

	batch := make([]*types.Product, len(reqs))
	for i := range reqs {
		batch[i] = reqs[i].toProduct()
	}
	if err := a.Catalog.BulkCreate(r.Context(), batch); err != nil {
		writeDomainError(w, err)
		return
	}
	views := make([]productView, len(batch))
	for i, product := range batch {
		views[i] = toProductView(product)
	}
	writeJSON(w, http.StatusCreated, views)
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	product, err := a.Catalog.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (a *App) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	product := req.toProduct()
	product.ID = id
	if err := a.Catalog.Update(r.Context(), product); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (a *App) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid_id", "")
		return
	}
	if err := a.Catalog.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
