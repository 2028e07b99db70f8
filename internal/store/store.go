package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctors-portal/api/internal/models"
)

const (
	servicesCollection = "services"
	bookingsCollection = "bookings"
	usersCollection    = "users"
	doctorsCollection  = "doctors"
	paymentsCollection = "payments"
)

// Mongo is the document-store handle shared by all components. Every
// operation runs under an explicit timeout so a request cannot hang
// indefinitely on an unresponsive store.
type Mongo struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewMongo(db *mongo.Database, timeout time.Duration) *Mongo {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Mongo{db: db, timeout: timeout}
}

func (s *Mongo) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Services returns the full treatment catalog.
func (s *Mongo) Services(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(servicesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// ServiceNames returns the catalog projected down to service names.
func (s *Mongo) ServiceNames(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := s.db.Collection(servicesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// BookingsByDate returns all bookings whose date field equals date exactly.
// No date parsing or normalization happens on either side.
func (s *Mongo) BookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{"date": date})
}

// BookingsByPatient returns all bookings made under the given patient email.
func (s *Mongo) BookingsByPatient(ctx context.Context, email string) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{"patientEmail": email})
}

func (s *Mongo) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(bookingsCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingByID returns the booking with the given id, or nil when none exists.
func (s *Mongo) BookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var booking models.Booking
	err := s.db.Collection(bookingsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingByKey looks up a booking by the (treatment, date, patientName)
// triple, or nil when none exists. Slot is deliberately not part of the key.
func (s *Mongo) BookingByKey(ctx context.Context, treatment, date, patientName string) (*models.Booking, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	filter := bson.M{
		"treatment":   treatment,
		"date":        date,
		"patientName": patientName,
	}
	var booking models.Booking
	err := s.db.Collection(bookingsCollection).FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// InsertBooking stores the booking and fills in its generated id.
func (s *Mongo) InsertBooking(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err := s.db.Collection(bookingsCollection).InsertOne(ctx, booking)
	return err
}

// MarkBookingPaid sets paid=true and the transaction id on a booking.
func (s *Mongo) MarkBookingPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	_, err := s.db.Collection(bookingsCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// InsertPayment appends a payment audit record.
func (s *Mongo) InsertPayment(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	_, err := s.db.Collection(paymentsCollection).InsertOne(ctx, payment)
	return err
}

// Users returns all user records.
func (s *Mongo) Users(ctx context.Context) ([]models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(usersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByEmail returns the user with the given email, or nil when none exists.
func (s *Mongo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var user models.User
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser creates or updates the profile stored under email. The role
// field is never touched here; granting admin goes through SetUserRole.
func (s *Mongo) UpsertUser(ctx context.Context, email string, user models.User) (*mongo.UpdateResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	fields := bson.M{"email": email}
	if user.Name != "" {
		fields["name"] = user.Name
	}
	opts := options.Update().SetUpsert(true)
	return s.db.Collection(usersCollection).UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields}, opts)
}

// SetUserRole overwrites the role of the user stored under email.
func (s *Mongo) SetUserRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role}}
	return s.db.Collection(usersCollection).UpdateOne(ctx, bson.M{"email": email}, update)
}

// Doctors returns all doctor records.
func (s *Mongo) Doctors(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(doctorsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// InsertDoctor stores a new doctor and fills in its generated id.
func (s *Mongo) InsertDoctor(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	_, err := s.db.Collection(doctorsCollection).InsertOne(ctx, doctor)
	return err
}

// DeleteDoctor removes the doctor stored under email and reports how many
// records matched.
func (s *Mongo) DeleteDoctor(ctx context.Context, email string) (int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	res, err := s.db.Collection(doctorsCollection).DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
