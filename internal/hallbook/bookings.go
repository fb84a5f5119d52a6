package hallbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingInput struct {
	UserID          string
	VenueID         string
	EventDate       time.Time
	GuestCount      *int
	Services        []BookingService
	SpecialRequests *string
}

// bookingTotal derives the amount charged for a booking: the venue price plus
// every selected service line item. Line items carry their own price, copied
// from the provider at selection time.
func bookingTotal(venue *Venue, services []BookingService) float64 {
	total := venue.Price
	for _, s := range services {
		total += s.Price
	}
	return total
}

// CreateBooking resolves the venue, computes the total and persists the
// booking with the venue's name and location denormalized in. The total is
// fixed at creation; later venue price changes do not touch it. Returns
// ErrVenueNotFound when the venue id does not resolve.
func (r *Repository) CreateBooking(ctx context.Context, in BookingInput) (*Booking, error) {
	venue, err := r.GetVenue(ctx, in.VenueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}

	now := time.Now().UTC()
	b := &Booking{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		VenueID:         in.VenueID,
		VenueName:       venue.Name,
		VenueLocation:   venue.Location,
		EventDate:       in.EventDate,
		GuestCount:      in.GuestCount,
		TotalAmount:     bookingTotal(venue, in.Services),
		BookingDate:     now,
		Status:          BookingPending,
		Services:        in.Services,
		SpecialRequests: in.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if b.Services == nil {
		b.Services = []BookingService{}
	}
	if _, err := r.bookingsCol.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return b, nil
}

func (r *Repository) GetBooking(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if err := r.bookingsCol.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

// ListUserBookings returns a user's bookings, newest first.
func (r *Repository) ListUserBookings(ctx context.Context, userID string) ([]Booking, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.bookingsCol.Find(ctx, bson.M{"user_id": userID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	result := []Booking{}
	for cur.Next(ctx) {
		var b Booking
		if err := cur.Decode(&b); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		result = append(result, b)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list bookings cursor: %w", err)
	}
	return result, nil
}

func (r *Repository) UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error) {
	res, err := r.bookingsCol.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetBooking(ctx, id)
}
