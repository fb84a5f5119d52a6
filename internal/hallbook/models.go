package hallbook

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Availability string

const (
	VenueAvailable   Availability = "available"
	VenueBooked      Availability = "booked"
	VenueMaintenance Availability = "maintenance"
)

type TimelineStatus string

const (
	TimelinePending   TimelineStatus = "pending"
	TimelineCompleted TimelineStatus = "completed"
	TimelineUpcoming  TimelineStatus = "upcoming"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

type SenderType string

const (
	SenderUser  SenderType = "user"
	SenderBot   SenderType = "bot"
	SenderAgent SenderType = "agent"
)

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type ContactInfo struct {
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
}

// Documents are addressed by their own "id" field rather than Mongo's _id so
// that ids survive export/import.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	ProfileImage *string   `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

type Venue struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Location     string       `bson:"location" json:"location"`
	Pincode      string       `bson:"pincode" json:"pincode"`
	Coordinates  Coordinates  `bson:"coordinates" json:"coordinates"`
	Price        float64      `bson:"price" json:"price"`
	Capacity     int          `bson:"capacity" json:"capacity"`
	Rating       float64      `bson:"rating" json:"rating"`
	Reviews      int          `bson:"reviews" json:"reviews"`
	Availability Availability `bson:"availability" json:"availability"`
	Images       []string     `bson:"images" json:"images"`
	Amenities    []string     `bson:"amenities" json:"amenities"`
	Description  string       `bson:"description" json:"description"`
	Contact      ContactInfo  `bson:"contact" json:"contact"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updated_at"`
}

// BookingService is a line item copied onto a booking at creation time.
type BookingService struct {
	ServiceID  string  `bson:"service_id" json:"service_id"`
	ProviderID string  `bson:"provider_id" json:"provider_id"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
}

type Booking struct {
	ID              string           `bson:"id" json:"id"`
	UserID          string           `bson:"user_id" json:"user_id"`
	VenueID         string           `bson:"venue_id" json:"venue_id"`
	VenueName       string           `bson:"venue_name" json:"venue_name"`
	VenueLocation   string           `bson:"venue_location" json:"venue_location"`
	EventDate       time.Time        `bson:"event_date" json:"event_date"`
	GuestCount      *int             `bson:"guest_count,omitempty" json:"guest_count,omitempty"`
	TotalAmount     float64          `bson:"total_amount" json:"total_amount"`
	BookingDate     time.Time        `bson:"booking_date" json:"booking_date"`
	Status          BookingStatus    `bson:"status" json:"status"`
	Services        []BookingService `bson:"services" json:"services"`
	SpecialRequests *string          `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updated_at"`
}

type ServiceProvider struct {
	ID         string      `bson:"id" json:"id"`
	Name       string      `bson:"name" json:"name"`
	Rating     float64     `bson:"rating" json:"rating"`
	PriceRange string      `bson:"price_range" json:"price_range"`
	Speciality string      `bson:"speciality" json:"speciality"`
	Services   []string    `bson:"services" json:"services"`
	Contact    ContactInfo `bson:"contact" json:"contact"`
}

type Service struct {
	ID        string            `bson:"id" json:"id"`
	Name      string            `bson:"name" json:"name"`
	Icon      string            `bson:"icon" json:"icon"`
	Providers []ServiceProvider `bson:"providers" json:"providers"`
}

type BudgetCategory struct {
	Name     string  `bson:"name" json:"name"`
	Budgeted float64 `bson:"budgeted" json:"budgeted"`
	Spent    float64 `bson:"spent" json:"spent"`
	Color    string  `bson:"color" json:"color"`
}

// WeddingBudget is a per-user singleton, keyed by user_id.
type WeddingBudget struct {
	ID          string           `bson:"id" json:"id"`
	UserID      string           `bson:"user_id" json:"user_id"`
	TotalBudget float64          `bson:"total_budget" json:"total_budget"`
	Categories  []BudgetCategory `bson:"categories" json:"categories"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `bson:"updated_at" json:"updated_at"`
}

type Guest struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Relation  string  `bson:"relation" json:"relation"`
	Phone     *string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   *string `bson:"address,omitempty" json:"address,omitempty"`
	Category  string  `bson:"category" json:"category"`
	Invited   bool    `bson:"invited" json:"invited"`
	Confirmed bool    `bson:"confirmed" json:"confirmed"`
}

// GuestList is a per-user singleton, keyed by user_id.
type GuestList struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Guests    []Guest   `bson:"guests" json:"guests"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type TimelineItem struct {
	ID          string         `bson:"id" json:"id"`
	Date        time.Time      `bson:"date" json:"date"`
	Time        string         `bson:"time" json:"time"`
	Event       string         `bson:"event" json:"event"`
	Description string         `bson:"description" json:"description"`
	Status      TimelineStatus `bson:"status" json:"status"`
}

// WeddingTimeline is a per-user singleton, keyed by user_id.
type WeddingTimeline struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"user_id" json:"user_id"`
	Items     []TimelineItem `bson:"items" json:"items"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

type ChatMessage struct {
	ID         string     `bson:"id" json:"id"`
	UserID     *string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Message    string     `bson:"message" json:"message"`
	SenderType SenderType `bson:"sender_type" json:"sender_type"`
	Timestamp  time.Time  `bson:"timestamp" json:"timestamp"`
}

type SupportTicket struct {
	ID        string        `bson:"id" json:"id"`
	UserID    *string       `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Subject   string        `bson:"subject" json:"subject"`
	Status    TicketStatus  `bson:"status" json:"status"`
	Messages  []ChatMessage `bson:"messages" json:"messages"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

type FAQ struct {
	ID       string `bson:"id" json:"id"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Category string `bson:"category" json:"category"`
	Order    int    `bson:"order" json:"order"`
}
