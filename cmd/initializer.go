package main

import (
	"database/sql"
	"log"

	"shareit/internal/handlers"
	"shareit/internal/repositories"
	"shareit/internal/services"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	userHandler    *handlers.UserHandler
	itemHandler    *handlers.ItemHandler
	bookingHandler *handlers.BookingHandler
	requestHandler *handlers.RequestHandler
}

func initializeApp(db *sql.DB, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	itemRepo := repositories.ItemRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	requestRepo := repositories.RequestRepository{DB: db}
	commentRepo := repositories.CommentRepository{DB: db}

	// Services
	userService := &services.UserService{UserRepo: &userRepo}
	itemService := &services.ItemService{
		ItemRepo:    &itemRepo,
		UserRepo:    &userRepo,
		BookingRepo: &bookingRepo,
		CommentRepo: &commentRepo,
	}
	bookingService := &services.BookingService{
		BookingRepo: &bookingRepo,
		UserRepo:    &userRepo,
		ItemRepo:    &itemRepo,
	}
	requestService := &services.RequestService{
		RequestRepo: &requestRepo,
		UserRepo:    &userRepo,
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	itemHandler := &handlers.ItemHandler{Service: itemService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService}
	requestHandler := &handlers.RequestHandler{Service: requestService}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		db:             db,
		userHandler:    userHandler,
		itemHandler:    itemHandler,
		bookingHandler: bookingHandler,
		requestHandler: requestHandler,
	}
}
