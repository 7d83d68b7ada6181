package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"shareit/internal/models"
)

// ErrorResponse is the body of every failed call: a summary label and a
// detail message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("writeJSON: %v", err)
		}
	}
}

func respondWithError(w http.ResponseWriter, status int, label, message string) {
	writeJSON(w, status, ErrorResponse{Error: label, Message: message})
}

// respondServiceError translates domain errors into the REST error surface:
// 400 for domain rule violations, 403 for ownership, 404 for missing
// entities, 409 for duplicate email, 500 otherwise.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrRequestNotFound):
		respondWithError(w, http.StatusNotFound, "Resource not found", err.Error())
	case errors.Is(err, models.ErrAccessDenied):
		respondWithError(w, http.StatusForbidden, "Access denied", err.Error())
	case errors.Is(err, models.ErrDuplicateEmail):
		respondWithError(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, models.ErrItemUnavailable),
		errors.Is(err, models.ErrBookingOverlap),
		errors.Is(err, models.ErrBookingDecided),
		errors.Is(err, models.ErrInvalidPeriod),
		errors.Is(err, models.ErrCommentNotAllowed),
		errors.Is(err, models.ErrUnknownState):
		respondWithError(w, http.StatusBadRequest, "Invalid data", err.Error())
	default:
		log.Printf("unexpected service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "unexpected error")
	}
}
