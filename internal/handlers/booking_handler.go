package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shareit/internal/models"
	"shareit/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	bookerID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid request body")
		return
	}
	booking, err := h.Service.CreateBooking(r.Context(), bookerID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// ApproveBooking decides a waiting booking; approved=true|false comes from
// the query string.
func (h *BookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	bookingID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid booking id")
		return
	}
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid approved parameter")
		return
	}
	booking, err := h.Service.ApproveBooking(r.Context(), userID, bookingID, approved)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", "invalid booking id")
		return
	}
	booking, err := h.Service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// GetBookingsByUser lists the acting user's own bookings filtered by state.
func (h *BookingHandler) GetBookingsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	state, err := models.ParseBookingState(r.URL.Query().Get("state"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	bookings, err := h.Service.GetBookingsByUser(r.Context(), userID, userID, state)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// GetBookingsForOwner lists bookings for items owned by the acting user.
func (h *BookingHandler) GetBookingsForOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseActingUserID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
		return
	}
	state, err := models.ParseBookingState(r.URL.Query().Get("state"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	bookings, err := h.Service.GetBookingsForOwner(r.Context(), ownerID, state)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}
