package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, requestID, secureHeaders, makeResponseJSON)

	mux := pat.New()

	// Users
	mux.Post("/users", http.HandlerFunc(app.userHandler.CreateUser))
	mux.Get("/users", http.HandlerFunc(app.userHandler.GetUsers))
	mux.Get("/users/:id", http.HandlerFunc(app.userHandler.GetUserByID))
	mux.Put("/users/:id", http.HandlerFunc(app.userHandler.UpdateUser))
	mux.Del("/users/:id", http.HandlerFunc(app.userHandler.DeleteUser))

	// Items
	mux.Post("/items", http.HandlerFunc(app.itemHandler.CreateItem))
	mux.Get("/items/search", http.HandlerFunc(app.itemHandler.SearchItems))
	mux.Get("/items/:id", http.HandlerFunc(app.itemHandler.GetItemByID))
	mux.Get("/items", http.HandlerFunc(app.itemHandler.GetItems))
	mux.Put("/items/:id", http.HandlerFunc(app.itemHandler.UpdateItem))
	mux.Del("/items/:id", http.HandlerFunc(app.itemHandler.DeleteItem))
	mux.Post("/items/:id/comment", http.HandlerFunc(app.itemHandler.AddComment))

	// Bookings
	mux.Post("/bookings", http.HandlerFunc(app.bookingHandler.CreateBooking))
	mux.Get("/bookings/owner", http.HandlerFunc(app.bookingHandler.GetBookingsForOwner))
	mux.Get("/bookings/:id", http.HandlerFunc(app.bookingHandler.GetBookingByID))
	mux.Get("/bookings", http.HandlerFunc(app.bookingHandler.GetBookingsByUser))
	mux.Put("/bookings/:id", http.HandlerFunc(app.bookingHandler.ApproveBooking))

	// Requests
	mux.Post("/requests", http.HandlerFunc(app.requestHandler.CreateRequest))
	mux.Get("/requests/all", http.HandlerFunc(app.requestHandler.GetRequestsExcludingUser))
	mux.Get("/requests/:id", http.HandlerFunc(app.requestHandler.GetRequestByID))
	mux.Get("/requests", http.HandlerFunc(app.requestHandler.GetRequestsByUser))

	return standardMiddleware.Then(mux)
}
