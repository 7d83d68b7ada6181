package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shareit/internal/models"
	"shareit/internal/services"
)

type ItemHandler struct {
	Service *services.ItemService
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid request body")
		return
	}
	created, err := h.Service.CreateItem(r.Context(), ownerID, item)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid item id")
		return
	}
	var upd models.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid request body")
		return
	}
	item, err := h.Service.UpdateItem(r.Context(), userID, itemID, upd)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid item id")
		return
	}
	item, err := h.Service.GetItemByID(r.Context(), userID, itemID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// GetItems serves the owner dashboard: the acting user's items with last and
// next bookings attached.
func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	limit, offset, err := parsePaging(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	items, err := h.Service.GetItemsByOwner(r.Context(), ownerID, limit, offset)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.SearchItems(r.Context(), r.URL.Query().Get("text"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid item id")
		return
	}
	if err := h.Service.DeleteItem(r.Context(), userID, itemID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid item id")
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid request body")
		return
	}
	comment, err := h.Service.AddComment(r.Context(), userID, itemID, body.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
