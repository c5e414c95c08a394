package api

import (
	"net/http"
	"strconv"

	"github.com/RafifFarandHariri/jasaku/internal/models"
	"github.com/RafifFarandHariri/jasaku/pkg/repository"
	"github.com/gorilla/mux"
)

// ServicesHandler implements the resource contract for marketplace listings.
// Unlike chats and orders the id is assigned by the store.
type ServicesHandler struct {
	repo repository.ServiceRepo
}

func NewServicesHandler(repo repository.ServiceRepo) *ServicesHandler {
	return &ServicesHandler{repo: repo}
}

type createServiceRequest struct {
	Title           *string  `json:"title"`
	Seller          *string  `json:"seller"`
	Price           *float64 `json:"price"`
	Sold            *int     `json:"sold"`
	Rating          *float64 `json:"rating"`
	Reviews         *int     `json:"reviews"`
	IsVerified      *bool    `json:"is_verified"`
	HasFastResponse *bool    `json:"has_fast_response"`
	Category        *string  `json:"category"`
}

func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.ListServices(r.Context())
	if err != nil {
		writeError(w, "failed to list services", http.StatusInternalServerError)
		return
	}
	if services == nil {
		services = []models.Service{}
	}

	writeJSON(w, services, http.StatusOK)
}

func (h *ServicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	s, err := h.repo.GetService(r.Context(), id)
	if err != nil {
		writeError(w, "failed to fetch service", http.StatusInternalServerError)
		return
	}
	if s == nil {
		writeJSON(w, emptyBody, http.StatusOK)
		return
	}

	writeJSON(w, s, http.StatusOK)
}

func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := decodeBody(r, serviceBodySchema, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	// new listings default to verified with fast response until moderation
	// says otherwise
	s := &models.Service{
		IsVerified:      true,
		HasFastResponse: true,
		Category:        req.Category,
	}
	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.Seller != nil {
		s.Seller = *req.Seller
	}
	if req.Price != nil {
		s.Price = *req.Price
	}
	if req.Sold != nil {
		s.Sold = *req.Sold
	}
	if req.Rating != nil {
		s.Rating = *req.Rating
	}
	if req.Reviews != nil {
		s.Reviews = *req.Reviews
	}
	if req.IsVerified != nil {
		s.IsVerified = *req.IsVerified
	}
	if req.HasFastResponse != nil {
		s.HasFastResponse = *req.HasFastResponse
	}

	id, err := h.repo.CreateService(r.Context(), s)
	if err != nil {
		if isConstraintViolation(err) {
			writeError(w, "conflict", http.StatusConflict)
			return
		}
		writeError(w, "failed to store service", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"id": id}, http.StatusCreated)
}

func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]
	if raw == "" {
		writeError(w, "Missing id", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	var patch models.ServicePatch
	if err := decodeBody(r, serviceBodySchema, &patch); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if patch.Empty() {
		writeJSON(w, okBody, http.StatusOK)
		return
	}

	if err := h.repo.UpdateService(r.Context(), id, &patch); err != nil {
		writeError(w, "failed to update service", http.StatusInternalServerError)
		return
	}

	writeJSON(w, okBody, http.StatusOK)
}

func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]
	if raw == "" {
		writeError(w, "Missing id", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteService(r.Context(), id); err != nil {
		writeError(w, "failed to delete service", http.StatusInternalServerError)
		return
	}

	writeJSON(w, okBody, http.StatusOK)
}
