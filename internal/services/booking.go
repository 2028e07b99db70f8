package services

import (
	"context"

	"github.com/doctors-portal/api/internal/models"
)

// BookingStore is the slice of the document store the resolver needs.
type BookingStore interface {
	BookingByKey(ctx context.Context, treatment, date, patientName string) (*models.Booking, error)
	InsertBooking(ctx context.Context, booking *models.Booking) error
}

// BookingResult is the two-outcome contract of a create attempt. A conflict
// is a normal outcome the client renders, not a transport failure; Booking
// carries the created record on success and the existing one on conflict.
type BookingResult struct {
	Success bool            `json:"success"`
	Booking *models.Booking `json:"booking"`
}

// BookingResolver enforces at most one booking per (treatment, date,
// patientName). Slot is not part of the key: the same patient cannot book
// the same treatment twice on one day even in a different slot.
type BookingResolver struct {
	store BookingStore
}

func NewBookingResolver(store BookingStore) *BookingResolver {
	return &BookingResolver{store: store}
}

// Create inserts the candidate unless a booking with the same key already
// exists, in which case the existing record is echoed back. The lookup and
// the insert are two independent store operations; a concurrent identical
// request can slip between them (inherited from the original system).
func (r *BookingResolver) Create(ctx context.Context, candidate models.Booking) (BookingResult, error) {
	existing, err := r.store.BookingByKey(ctx, candidate.Treatment, candidate.Date, candidate.PatientName)
	if err != nil {
		return BookingResult{}, err
	}
	if existing != nil {
		return BookingResult{Success: false, Booking: existing}, nil
	}

	if err := r.store.InsertBooking(ctx, &candidate); err != nil {
		return BookingResult{}, err
	}
	return BookingResult{Success: true, Booking: &candidate}, nil
}
