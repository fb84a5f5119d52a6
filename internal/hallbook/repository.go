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

// ErrVenueNotFound is returned when a booking references a venue id that does
// not resolve. It is distinct from a plain missing record so callers can map
// it to a client fault rather than a missing resource.
var ErrVenueNotFound = errors.New("venue not found")

// Repository owns all reads and writes against the document store. Lookups by
// id or owner id return (nil, nil) when no document matches; callers decide
// whether that means 404 or default provisioning.
type Repository struct {
	db           *mongo.Database
	usersCol     *mongo.Collection
	venuesCol    *mongo.Collection
	bookingsCol  *mongo.Collection
	servicesCol  *mongo.Collection
	budgetsCol   *mongo.Collection
	guestsCol    *mongo.Collection
	timelinesCol *mongo.Collection
	ticketsCol   *mongo.Collection
	faqsCol      *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		db:           db,
		usersCol:     db.Collection("users"),
		venuesCol:    db.Collection("venues"),
		bookingsCol:  db.Collection("bookings"),
		servicesCol:  db.Collection("services"),
		budgetsCol:   db.Collection("wedding_budgets"),
		guestsCol:    db.Collection("guest_lists"),
		timelinesCol: db.Collection("wedding_timelines"),
		ticketsCol:   db.Collection("support_tickets"),
		faqsCol:      db.Collection("faqs"),
	}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, col := range []*mongo.Collection{
		r.usersCol, r.venuesCol, r.bookingsCol, r.servicesCol,
		r.budgetsCol, r.guestsCol, r.timelinesCol, r.ticketsCol, r.faqsCol,
	} {
		if _, err := col.Indexes().CreateOne(ctx, idIndex); err != nil {
			return fmt.Errorf("%s id index: %w", col.Name(), err)
		}
	}

	ownerIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, col := range []*mongo.Collection{r.budgetsCol, r.guestsCol, r.timelinesCol} {
		if _, err := col.Indexes().CreateOne(ctx, ownerIndex); err != nil {
			return fmt.Errorf("%s user_id index: %w", col.Name(), err)
		}
	}

	if _, err := r.bookingsCol.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	}); err != nil {
		return fmt.Errorf("bookings user_id index: %w", err)
	}
	return nil
}

// User operations

type UserInput struct {
	Name         string
	Phone        string
	Email        string
	ProfileImage *string
}

func (r *Repository) CreateUser(ctx context.Context, in UserInput) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		ProfileImage: in.ProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := r.usersCol.InsertOne(ctx, u); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *Repository) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := r.usersCol.FindOne(ctx, bson.M{"id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	Name         *string
	Phone        *string
	Email        *string
	ProfileImage *string
}

func (p UserPatch) setDoc() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.ProfileImage != nil {
		set["profile_image"] = *p.ProfileImage
	}
	return set
}

// UpdateUser applies the non-nil fields of patch and refreshes updated_at.
// A no-op patch on an existing user still succeeds; only a missing user
// yields (nil, nil).
func (r *Repository) UpdateUser(ctx context.Context, id string, patch UserPatch) (*User, error) {
	set := patch.setDoc()
	set["updated_at"] = time.Now().UTC()

	res, err := r.usersCol.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetUser(ctx, id)
}

// Venue operations

type VenueInput struct {
	Name        string
	Location    string
	Pincode     string
	Coordinates Coordinates
	Price       float64
	Capacity    int
	Images      []string
	Amenities   []string
	Description string
	Contact     ContactInfo
}

func (r *Repository) CreateVenue(ctx context.Context, in VenueInput) (*Venue, error) {
	now := time.Now().UTC()
	v := &Venue{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Location:     in.Location,
		Pincode:      in.Pincode,
		Coordinates:  in.Coordinates,
		Price:        in.Price,
		Capacity:     in.Capacity,
		Rating:       0,
		Reviews:      0,
		Availability: VenueAvailable,
		Images:       in.Images,
		Amenities:    in.Amenities,
		Description:  in.Description,
		Contact:      in.Contact,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	if v.Amenities == nil {
		v.Amenities = []string{}
	}
	if _, err := r.venuesCol.InsertOne(ctx, v); err != nil {
		return nil, fmt.Errorf("insert venue: %w", err)
	}
	return v, nil
}

func (r *Repository) GetVenue(ctx context.Context, id string) (*Venue, error) {
	var v Venue
	if err := r.venuesCol.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return &v, nil
}

func (r *Repository) ListVenues(ctx context.Context, filter VenueFilter, skip, limit int64) ([]Venue, error) {
	findOpts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := r.venuesCol.Find(ctx, filter.Query(), findOpts)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer cur.Close(ctx)

	result := []Venue{}
	for cur.Next(ctx) {
		var v Venue
		if err := cur.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode venue: %w", err)
		}
		result = append(result, v)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list venues cursor: %w", err)
	}
	return result, nil
}

func (r *Repository) CountVenues(ctx context.Context, filter VenueFilter) (int64, error) {
	n, err := r.venuesCol.CountDocuments(ctx, filter.Query())
	if err != nil {
		return 0, fmt.Errorf("count venues: %w", err)
	}
	return n, nil
}

// Service operations

type ServiceInput struct {
	Name      string
	Icon      string
	Providers []ServiceProvider
}

func (r *Repository) CreateService(ctx context.Context, in ServiceInput) (*Service, error) {
	s := &Service{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Icon:      in.Icon,
		Providers: in.Providers,
	}
	if s.Providers == nil {
		s.Providers = []ServiceProvider{}
	}
	for i := range s.Providers {
		if s.Providers[i].ID == "" {
			s.Providers[i].ID = uuid.NewString()
		}
	}
	if _, err := r.servicesCol.InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return s, nil
}

func (r *Repository) ListServices(ctx context.Context) ([]Service, error) {
	cur, err := r.servicesCol.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	result := []Service{}
	for cur.Next(ctx) {
		var s Service
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		result = append(result, s)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list services cursor: %w", err)
	}
	return result, nil
}
