package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/bmizerany/pat"
	"github.com/stretchr/testify/require"

	"shareit/internal/models"
	"shareit/internal/repositories"
	"shareit/internal/services"
)

// newTestServer wires memory-backed services behind the same routes the
// application registers.
func newTestServer() (*httptest.Server, *services.UserService, *services.ItemService, *services.BookingService) {
	users := repositories.NewMemoryUserRepository()
	items := repositories.NewMemoryItemRepository()
	bookings := repositories.NewMemoryBookingRepository(func(itemID int) (int, bool) {
		item, err := items.GetItemByID(context.Background(), itemID)
		if err != nil {
			return 0, false
		}
		return item.OwnerID, true
	})
	comments := repositories.NewMemoryCommentRepository()
	requests := repositories.NewMemoryRequestRepository()

	userSvc := &services.UserService{UserRepo: users}
	itemSvc := &services.ItemService{ItemRepo: items, UserRepo: users, BookingRepo: bookings, CommentRepo: comments}
	bookingSvc := &services.BookingService{BookingRepo: bookings, UserRepo: users, ItemRepo: items}
	requestSvc := &services.RequestService{RequestRepo: requests, UserRepo: users}

	userHandler := &UserHandler{Service: userSvc}
	itemHandler := &ItemHandler{Service: itemSvc}
	bookingHandler := &BookingHandler{Service: bookingSvc}
	requestHandler := &RequestHandler{Service: requestSvc}

	mux := pat.New()
	mux.Post("/users", http.HandlerFunc(userHandler.CreateUser))
	mux.Get("/users/:id", http.HandlerFunc(userHandler.GetUserByID))
	mux.Post("/items", http.HandlerFunc(itemHandler.CreateItem))
	mux.Get("/items/search", http.HandlerFunc(itemHandler.SearchItems))
	mux.Get("/items/:id", http.HandlerFunc(itemHandler.GetItemByID))
	mux.Post("/items/:id/comment", http.HandlerFunc(itemHandler.AddComment))
	mux.Post("/bookings", http.HandlerFunc(bookingHandler.CreateBooking))
	mux.Get("/bookings/owner", http.HandlerFunc(bookingHandler.GetBookingsForOwner))
	mux.Get("/bookings/:id", http.HandlerFunc(bookingHandler.GetBookingByID))
	mux.Get("/bookings", http.HandlerFunc(bookingHandler.GetBookingsByUser))
	mux.Put("/bookings/:id", http.HandlerFunc(bookingHandler.ApproveBooking))
	mux.Post("/requests", http.HandlerFunc(requestHandler.CreateRequest))
	mux.Get("/requests/all", http.HandlerFunc(requestHandler.GetRequestsExcludingUser))
	mux.Get("/requests/:id", http.HandlerFunc(requestHandler.GetRequestByID))
	mux.Get("/requests", http.HandlerFunc(requestHandler.GetRequestsByUser))

	return httptest.NewServer(mux), userSvc, itemSvc, bookingSvc
}

func doRequest(t *testing.T, method, url string, actingUser int, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if actingUser > 0 {
		req.Header.Set(SharerHeader, strconv.Itoa(actingUser))
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func mustCreateUser(t *testing.T, svc *services.UserService, name, email string) models.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), models.User{Name: name, Email: email})
	require.NoError(t, err)
	return user
}

func mustCreateItem(t *testing.T, svc *services.ItemService, ownerID int, name string, available bool) models.Item {
	t.Helper()
	item, err := svc.CreateItem(context.Background(), ownerID, models.Item{
		Name:        name,
		Description: name + " description",
		Available:   available,
	})
	require.NoError(t, err)
	return item
}
