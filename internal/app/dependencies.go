package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planbord/planbord/internal/config"
	"github.com/planbord/planbord/pkg/booking"
	"github.com/planbord/planbord/pkg/directory"
	"github.com/planbord/planbord/pkg/gcal"
	"github.com/planbord/planbord/pkg/mail"
	"github.com/planbord/planbord/pkg/notification"
)

// Dependencies holds all clients, services and handlers for the application.
type Dependencies struct {
	DB *pgxpool.Pool

	UserService directory.Service
	UserHandler *directory.Handler

	CalendarClient gcal.Client

	BookingService *booking.Service
	BookingHandler *booking.Handler

	Mailer              mail.Mailer
	NotificationService notification.Service
	NotificationHandler *notification.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
// All long-lived clients are constructed once here and shared by every request.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{DB: db}

	deps.UserService = directory.NewUserService(directory.NewUserRepo(db))
	deps.UserHandler = directory.NewHandler(deps.UserService)

	calendarClient, err := gcal.NewClient(context.Background(), cfg.Google.CredentialsFile)
	if err != nil {
		return nil, err
	}
	deps.CalendarClient = calendarClient

	deps.BookingService = booking.NewService(deps.UserService, deps.CalendarClient)
	deps.BookingHandler = booking.NewHandler(deps.BookingService)

	mailer, err := mail.NewSMTPMailer(cfg.Mail)
	if err != nil {
		return nil, err
	}
	deps.Mailer = mailer
	deps.NotificationService = notification.NewService(deps.Mailer)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationService)

	return deps, nil
}
