package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctors-portal/api/internal/models"
	"github.com/doctors-portal/api/internal/services"
	"github.com/doctors-portal/api/internal/token"
)

// Store is the document-store surface the handlers depend on, implemented by
// store.Mongo.
type Store interface {
	Services(ctx context.Context) ([]models.Service, error)
	ServiceNames(ctx context.Context) ([]models.Service, error)

	BookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
	BookingsByPatient(ctx context.Context, email string) ([]models.Booking, error)
	BookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	MarkBookingPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error
	InsertPayment(ctx context.Context, payment *models.Payment) error

	Users(ctx context.Context) ([]models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertUser(ctx context.Context, email string, user models.User) (*mongo.UpdateResult, error)
	SetUserRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)

	Doctors(ctx context.Context) ([]models.Doctor, error)
	InsertDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteDoctor(ctx context.Context, email string) (int64, error)
}

// IntentCreator creates payment intents with the processor.
type IntentCreator interface {
	CreateIntent(price int) (string, error)
}

type Handler struct {
	Store    Store
	Bookings *services.BookingResolver
	Payments IntentCreator
	Tokens   *token.Service
	Notifier *services.NotificationService
}

func NewHandler(store Store, bookings *services.BookingResolver, payments IntentCreator,
	tokens *token.Service, notifier *services.NotificationService) *Handler {
	return &Handler{
		Store:    store,
		Bookings: bookings,
		Payments: payments,
		Tokens:   tokens,
		Notifier: notifier,
	}
}
