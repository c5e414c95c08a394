package api

import (
	"net/http"
	"time"

	"github.com/RafifFarandHariri/jasaku/internal/models"
	"github.com/RafifFarandHariri/jasaku/pkg/repository"
	"github.com/gorilla/mux"
)

// ChatsHandler implements the resource contract for chat messages: string
// ids, optional conversation scoping, whitelist partial updates.
type ChatsHandler struct {
	repo repository.ChatRepo
}

func NewChatsHandler(repo repository.ChatRepo) *ChatsHandler {
	return &ChatsHandler{repo: repo}
}

type createChatRequest struct {
	ID             *string  `json:"id"`
	ConversationID *string  `json:"conversationId"`
	Text           *string  `json:"text"`
	IsMe           *bool    `json:"isMe"`
	Timestamp      *string  `json:"timestamp"`
	Type           *int     `json:"type"`
	SenderName     *string  `json:"senderName"`
	ServiceID      *string  `json:"serviceId"`
	ProposedPrice  *float64 `json:"proposedPrice"`
	OfferID        *string  `json:"offerId"`
}

// List returns all messages of one conversation in chronological order when
// the conversationId filter is present, otherwise the whole table newest
// first. The filter triggers on presence, even with an empty value.
func (h *ChatsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("conversationId") {
		msgs, err := h.repo.ListChatsByConversation(r.Context(), q.Get("conversationId"))
		if err != nil {
			writeError(w, "failed to list chat messages", http.StatusInternalServerError)
			return
		}
		if msgs == nil {
			msgs = []models.ChatMessage{}
		}
		writeJSON(w, msgs, http.StatusOK)
		return
	}

	msgs, err := h.repo.ListChats(r.Context())
	if err != nil {
		writeError(w, "failed to list chat messages", http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}

	writeJSON(w, msgs, http.StatusOK)
}

func (h *ChatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	m, err := h.repo.GetChat(r.Context(), id)
	if err != nil {
		writeError(w, "failed to fetch chat message", http.StatusInternalServerError)
		return
	}
	if m == nil {
		writeJSON(w, emptyBody, http.StatusOK)
		return
	}

	writeJSON(w, m, http.StatusOK)
}

func (h *ChatsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createChatRequest
	if err := decodeBody(r, chatBodySchema, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	m := &models.ChatMessage{
		ID:             newResourceID(),
		ConversationID: req.ConversationID,
		Text:           req.Text,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		SenderName:     req.SenderName,
		ServiceID:      req.ServiceID,
		ProposedPrice:  req.ProposedPrice,
		OfferID:        req.OfferID,
	}
	if req.ID != nil && *req.ID != "" {
		m.ID = *req.ID
	}
	if req.IsMe != nil {
		m.IsMe = *req.IsMe
	}
	if req.Timestamp != nil {
		m.Timestamp = *req.Timestamp
	}
	if req.Type != nil {
		m.Type = *req.Type
	}

	if err := h.repo.CreateChat(r.Context(), m); err != nil {
		if isConstraintViolation(err) {
			writeError(w, "conflict", http.StatusConflict)
			return
		}
		writeError(w, "failed to store chat message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"id": m.ID}, http.StatusCreated)
}

func (h *ChatsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, "Missing id", http.StatusBadRequest)
		return
	}

	var patch models.ChatPatch
	if err := decodeBody(r, chatBodySchema, &patch); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	// no recognized field: acknowledge without touching the store
	if patch.Empty() {
		writeJSON(w, okBody, http.StatusOK)
		return
	}

	if err := h.repo.UpdateChat(r.Context(), id, &patch); err != nil {
		writeError(w, "failed to update chat message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, okBody, http.StatusOK)
}

func (h *ChatsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, "Missing id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteChat(r.Context(), id); err != nil {
		writeError(w, "failed to delete chat message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, okBody, http.StatusOK)
}
