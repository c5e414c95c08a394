package api

import (
	"net/http"
	"strconv"

	"github.com/RafifFarandHariri/jasaku/internal/models"
	"github.com/RafifFarandHariri/jasaku/pkg/repository"
	"github.com/gorilla/mux"
)

// UsersHandler exposes read/update/delete over user profiles. There is no
// create path here: rows come into existence through auth signup.
type UsersHandler struct {
	repo repository.UserRepo
}

func NewUsersHandler(repo repository.UserRepo) *UsersHandler {
	return &UsersHandler{repo: repo}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.ListUsers(r.Context())
	if err != nil {
		writeError(w, "failed to list users", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, users, http.StatusOK)
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	u, err := h.repo.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, "failed to fetch user", http.StatusInternalServerError)
		return
	}
	if u == nil {
		writeJSON(w, emptyBody, http.StatusOK)
		return
	}

	writeJSON(w, u, http.StatusOK)
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var patch models.UserPatch
	if err := decodeBody(r, userBodySchema, &patch); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if patch.Empty() {
		writeJSON(w, okBody, http.StatusOK)
		return
	}

	if err := h.repo.UpdateUser(r.Context(), id, &patch); err != nil {
		if isConstraintViolation(err) {
			writeError(w, "conflict", http.StatusConflict)
			return
		}
		writeError(w, "failed to update user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, okBody, http.StatusOK)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.repo.DeleteUser(r.Context(), id); err != nil {
		writeError(w, "failed to delete user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, okBody, http.StatusOK)
}
