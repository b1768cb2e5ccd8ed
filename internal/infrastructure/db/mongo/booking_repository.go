package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/styledecor/booking-api/internal/core/domain"
)

const collectionBookings = "bookings"

// BookingRepository implements ports.BookingRepository on MongoDB. All state
// transitions are conditional single-document updates: the precondition
// travels in the filter, so two concurrent writers can never leave a booking
// half-mutated and the last qualifying write wins.
type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

// bookingDoc is the storage representation; the _id is assigned by Mongo.
type bookingDoc struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	ClientEmail    string               `bson:"client_email"`
	ServiceID      string               `bson:"service_id"`
	Address        string               `bson:"address,omitempty"`
	Notes          string               `bson:"notes,omitempty"`
	Status         domain.BookingStatus `bson:"status"`
	PaymentStatus  domain.PaymentStatus `bson:"payment_status"`
	DecoratorEmail *string              `bson:"decorator_email,omitempty"`
	TransactionID  *string              `bson:"transaction_id,omitempty"`
	BookedAt       time.Time            `bson:"booked_at"`
}

func (d *bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:             d.ID.Hex(),
		ClientEmail:    d.ClientEmail,
		ServiceID:      d.ServiceID,
		Address:        d.Address,
		Notes:          d.Notes,
		Status:         d.Status,
		PaymentStatus:  d.PaymentStatus,
		DecoratorEmail: d.DecoratorEmail,
		TransactionID:  d.TransactionID,
		BookedAt:       d.BookedAt,
	}
}

// parseID converts a caller-supplied identifier. A malformed id is reported
// as not found: callers cannot distinguish a bad id from a missing booking.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrBookingNotFound
	}
	return oid, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookingDoc{
		ClientEmail:    b.ClientEmail,
		ServiceID:      b.ServiceID,
		Address:        b.Address,
		Notes:          b.Notes,
		Status:         b.Status,
		PaymentStatus:  b.PaymentStatus,
		DecoratorEmail: b.DecoratorEmail,
		TransactionID:  b.TransactionID,
		BookedAt:       b.BookedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid.Hex()
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bookingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) ListByClient(ctx context.Context, email string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"client_email": email})
}

func (r *BookingRepository) ListByDecorator(ctx context.Context, email string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"decorator_email": email})
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "booked_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cursor.Next(ctx) {
		var doc bookingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		bookings = append(bookings, doc.toDomain())
	}
	return bookings, cursor.Err()
}

// Assign writes decorator_email and status=assigned together, guarded by the
// allowed source statuses.
func (r *BookingRepository) Assign(ctx context.Context, id, decoratorEmail string, from []domain.BookingStatus) (*domain.Booking, error) {
	update := bson.M{"$set": bson.M{
		"decorator_email": decoratorEmail,
		"status":          domain.StatusAssigned,
	}}
	return r.conditionalUpdate(ctx, id, statusFilter(from), update)
}

// UpdateStatus applies a validated transition, guarded by its source statuses.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, to domain.BookingStatus, from []domain.BookingStatus) (*domain.Booking, error) {
	update := bson.M{"$set": bson.M{"status": to}}
	return r.conditionalUpdate(ctx, id, statusFilter(from), update)
}

// ConfirmPayment flips payment_status to paid and records the transaction id,
// only while the booking is still unpaid. A repeat call matches nothing.
func (r *BookingRepository) ConfirmPayment(ctx context.Context, id, transactionID string) (*domain.Booking, error) {
	cond := bson.M{"payment_status": domain.PaymentUnpaid}
	update := bson.M{"$set": bson.M{
		"payment_status": domain.PaymentPaid,
		"transaction_id": transactionID,
	}}
	return r.conditionalUpdate(ctx, id, cond, update)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// conditionalUpdate runs a FindOneAndUpdate with the given precondition
// merged into the filter and returns the post-update document.
// domain.ErrBookingNotFound means the filter matched nothing — either the
// booking is absent or the precondition failed; the service layer tells the
// two apart.
func (r *BookingRepository) conditionalUpdate(ctx context.Context, id string, cond, update bson.M) (*domain.Booking, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	for k, v := range cond {
		filter[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bookingDoc
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func statusFilter(from []domain.BookingStatus) bson.M {
	statuses := make([]string, 0, len(from))
	for _, s := range from {
		statuses = append(statuses, string(s))
	}
	return bson.M{"status": bson.M{"$in": statuses}}
}

// EnsureIndexes creates the indexes the list projections rely on.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_email", Value: 1}}},
		{Keys: bson.D{{Key: "decorator_email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
