package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shareit/internal/models"
	"shareit/internal/services"
)

type RequestHandler struct {
	Service *services.RequestService
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	var body struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid request body")
		return
	}
	request, err := h.Service.CreateRequest(r.Context(), userID, body.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *RequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid request id")
		return
	}
	request, err := h.Service.GetRequestByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

// GetRequestsByUser lists requests authored by the acting user.
func (h *RequestHandler) GetRequestsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	requests, err := h.Service.GetRequestsByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if requests == nil {
		requests = []models.ItemRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

// GetRequestsExcludingUser lists requests authored by everyone else.
func (h *RequestHandler) GetRequestsExcludingUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	requests, err := h.Service.GetRequestsExcludingUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if requests == nil {
		requests = []models.ItemRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
