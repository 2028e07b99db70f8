package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctors-portal/api/internal/middleware"
	"github.com/doctors-portal/api/internal/models"
	"github.com/doctors-portal/api/internal/services"
	"github.com/doctors-portal/api/internal/token"
)

const testSecret = "test-secret"

// fakeStore is an in-memory stand-in for store.Mongo. It implements both the
// handlers' Store interface and the resolver's BookingStore.
type fakeStore struct {
	services []models.Service
	bookings []models.Booking
	users    map[string]models.User
	doctors  []models.Doctor
	payments []models.Payment

	lastDateQueried string
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]models.User)}
}

func (f *fakeStore) Services(context.Context) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeStore) ServiceNames(context.Context) ([]models.Service, error) {
	names := make([]models.Service, len(f.services))
	for i, s := range f.services {
		names[i] = models.Service{ID: s.ID, Name: s.Name}
	}
	return names, nil
}

func (f *fakeStore) BookingsByDate(_ context.Context, date string) ([]models.Booking, error) {
	f.lastDateQueried = date
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) BookingsByPatient(_ context.Context, email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PatientEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) BookingByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) BookingByKey(_ context.Context, treatment, date, patientName string) (*models.Booking, error) {
	for i := range f.bookings {
		b := f.bookings[i]
		if b.Treatment == treatment && b.Date == date && b.PatientName == patientName {
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertBooking(_ context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeStore) MarkBookingPaid(_ context.Context, id primitive.ObjectID, transactionID string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Paid = true
			f.bookings[i].TransactionID = transactionID
		}
	}
	return nil
}

func (f *fakeStore) InsertPayment(_ context.Context, payment *models.Payment) error {
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakeStore) Users(context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeStore) UpsertUser(_ context.Context, email string, user models.User) (*mongo.UpdateResult, error) {
	existing := f.users[email]
	existing.Email = email
	if user.Name != "" {
		existing.Name = user.Name
	}
	f.users[email] = existing
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (f *fakeStore) SetUserRole(_ context.Context, email, role string) (*mongo.UpdateResult, error) {
	u := f.users[email]
	u.Email = email
	u.Role = role
	f.users[email] = u
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeStore) Doctors(context.Context) ([]models.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeStore) InsertDoctor(_ context.Context, doctor *models.Doctor) error {
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	f.doctors = append(f.doctors, *doctor)
	return nil
}

func (f *fakeStore) DeleteDoctor(_ context.Context, email string) (int64, error) {
	var kept []models.Doctor
	var deleted int64
	for _, d := range f.doctors {
		if d.Email == email {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	f.doctors = kept
	return deleted, nil
}

// newTestRouter wires the handler over the fake store with the same gate
// layout as cmd/api.
func newTestRouter(fs *fakeStore) (*gin.Engine, *token.Service) {
	gin.SetMode(gin.TestMode)
	tokens := token.NewService(testSecret)
	h := NewHandler(fs, services.NewBookingResolver(fs), nil, tokens, services.NewNotificationService(""))

	authenticated := middleware.Authenticate(tokens)
	adminOnly := middleware.RequireAdmin(fs)

	r := gin.New()
	r.GET("/service", h.GetServices)
	r.GET("/available", h.GetAvailable)
	r.GET("/admin/:email", h.CheckAdmin)
	r.POST("/booking", h.CreateBooking)
	r.GET("/booking", authenticated, middleware.RequireOwner("patientEmail"), h.GetBookings)
	r.GET("/booking/:id", authenticated, h.GetBooking)
	r.PATCH("/booking/:id", authenticated, h.ConfirmPayment)
	r.PUT("/user/:email", h.UpsertUser)
	r.PUT("/user/:email/admin", authenticated, adminOnly, h.MakeAdmin)
	r.POST("/doctor", authenticated, adminOnly, h.AddDoctor)
	r.DELETE("/doctor/:email", authenticated, adminOnly, h.DeleteDoctor)
	return r, tokens
}

func performJSON(r *gin.Engine, method, target, body, bearer string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
