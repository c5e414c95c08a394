package api

import (
	"net/http"
	"time"

	"github.com/RafifFarandHariri/jasaku/internal/models"
	"github.com/RafifFarandHariri/jasaku/pkg/repository"
	"github.com/gorilla/mux"
)

// OrdersHandler implements the resource contract for orders: string ids,
// optional customer scoping, whitelist partial updates.
type OrdersHandler struct {
	repo repository.OrderRepo
}

func NewOrdersHandler(repo repository.OrderRepo) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

type createOrderRequest struct {
	ID            *string  `json:"id"`
	ServiceID     *string  `json:"serviceId"`
	ServiceTitle  *string  `json:"serviceTitle"`
	SellerID      *string  `json:"sellerId"`
	SellerName    *string  `json:"sellerName"`
	CustomerID    *string  `json:"customerId"`
	CustomerName  *string  `json:"customerName"`
	Price         *float64 `json:"price"`
	Quantity      *int     `json:"quantity"`
	Notes         *string  `json:"notes"`
	Status        *int     `json:"status"`
	OrderDate     *string  `json:"orderDate"`
	Deadline      *string  `json:"deadline"`
	CompletedDate *string  `json:"completedDate"`
	PaymentMethod *string  `json:"paymentMethod"`
	IsPaid        *bool    `json:"isPaid"`
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("customerId") {
		orders, err := h.repo.ListOrdersByCustomer(r.Context(), q.Get("customerId"))
		if err != nil {
			writeError(w, "failed to list orders", http.StatusInternalServerError)
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		writeJSON(w, orders, http.StatusOK)
		return
	}

	orders, err := h.repo.ListOrders(r.Context())
	if err != nil {
		writeError(w, "failed to list orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	writeJSON(w, orders, http.StatusOK)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	o, err := h.repo.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, "failed to fetch order", http.StatusInternalServerError)
		return
	}
	if o == nil {
		writeJSON(w, emptyBody, http.StatusOK)
		return
	}

	writeJSON(w, o, http.StatusOK)
}

func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeBody(r, orderBodySchema, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	o := &models.Order{
		ID:            newResourceID(),
		ServiceID:     req.ServiceID,
		ServiceTitle:  req.ServiceTitle,
		SellerID:      req.SellerID,
		SellerName:    req.SellerName,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Quantity:      1,
		Notes:         req.Notes,
		OrderDate:     time.Now().UTC().Format(time.RFC3339),
		Deadline:      req.Deadline,
		CompletedDate: req.CompletedDate,
		PaymentMethod: req.PaymentMethod,
	}
	if req.ID != nil && *req.ID != "" {
		o.ID = *req.ID
	}
	if req.Price != nil {
		o.Price = *req.Price
	}
	if req.Quantity != nil {
		o.Quantity = *req.Quantity
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.OrderDate != nil {
		o.OrderDate = *req.OrderDate
	}
	if req.IsPaid != nil {
		o.IsPaid = *req.IsPaid
	}

	if err := h.repo.CreateOrder(r.Context(), o); err != nil {
		if isConstraintViolation(err) {
			writeError(w, "conflict", http.StatusConflict)
			return
		}
		writeError(w, "failed to store order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"id": o.ID}, http.StatusCreated)
}

func (h *OrdersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, "Missing id", http.StatusBadRequest)
		return
	}

	var patch models.OrderPatch
	if err := decodeBody(r, orderBodySchema, &patch); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if patch.Empty() {
		writeJSON(w, okBody, http.StatusOK)
		return
	}

	// zero rows matched is still a success: the operation is idempotent
	if err := h.repo.UpdateOrder(r.Context(), id, &patch); err != nil {
		writeError(w, "failed to update order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, okBody, http.StatusOK)
}

func (h *OrdersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, "Missing id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, "failed to delete order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, okBody, http.StatusOK)
}
