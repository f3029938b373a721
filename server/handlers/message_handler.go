package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"roomshare-server/logger"
	"roomshare-server/models"
	services "roomshare-server/service"
)

type messagesResponse struct {
	Messages []models.Message `json:"messages"`
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

type MessageHandler struct {
	messages *services.MessageService
	log      logger.Logger
}

func NewMessageHandler(messages *services.MessageService, log logger.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, log: log}
}

// List handles GET /v1/conversations/{id}/messages. Fetching marks the
// counterpart's messages as read.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	msgs, err := h.messages.ListMessages(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messagesResponse{Messages: msgs})
}

// Send handles POST /v1/conversations/{id}/messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	msg, err := h.messages.Send(r.Context(), mux.Vars(r)["id"], userID, req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
