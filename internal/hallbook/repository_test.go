package hallbook

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"hallbook/internal/db"
)

// These tests run against a live MongoDB. Set HALLBOOK_TEST_MONGO_URI to
// enable them, e.g. mongodb://127.0.0.1:27017.
func testRepo(t *testing.T) (*Repository, context.Context) {
	t.Helper()

	uri := os.Getenv("HALLBOOK_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("HALLBOOK_TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	client, err := db.OpenMongo(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(ctx)
	})

	database := client.Database("hallbook_test")
	require.NoError(t, database.Drop(ctx))

	repo := NewRepository(database)
	require.NoError(t, repo.EnsureIndexes(ctx))
	return repo, ctx
}

func seedVenue(t *testing.T, repo *Repository, ctx context.Context, name, location, pincode string, price float64, capacity int) *Venue {
	t.Helper()
	v, err := repo.CreateVenue(ctx, VenueInput{
		Name:        name,
		Location:    location,
		Pincode:     pincode,
		Coordinates: Coordinates{Lat: 17.36, Lng: 78.47},
		Price:       price,
		Capacity:    capacity,
		Description: "test venue",
		Contact:     ContactInfo{Phone: "+91 9000000000", Email: "venue@example.com"},
	})
	require.NoError(t, err)
	return v
}

func TestVenueListCountConsistency(t *testing.T) {
	repo, ctx := testRepo(t)

	seedVenue(t, repo, ctx, "R K Function Hall", "Bandlaguda Jagir", "500005", 40000, 500)
	seedVenue(t, repo, ctx, "Sri Lakshmi Convention", "Chandrayangutta", "500005", 35000, 400)
	seedVenue(t, repo, ctx, "Golden Palace Banquet", "Bandlaguda Jagir", "500005", 55000, 800)
	seedVenue(t, repo, ctx, "Marigold Gardens", "Chandrayangutta", "500062", 30000, 300)

	filters := []VenueFilter{
		{},
		{MaxBudget: floatPtr(40000)},
		{MinCapacity: intPtr(400)},
		{MaxBudget: floatPtr(40000), MinCapacity: intPtr(400)},
		{Pincode: strPtr("500005")},
		{Search: strPtr("PALACE")},
		{Search: strPtr("chandrayangutta")},
		{MinCapacity: intPtr(0)},
		{MaxBudget: floatPtr(0)},
	}
	for _, f := range filters {
		total, err := repo.CountVenues(ctx, f)
		require.NoError(t, err)
		listed, err := repo.ListVenues(ctx, f, 0, 100)
		require.NoError(t, err)
		assert.Equal(t, int(total), len(listed))
	}
}

func TestVenueFilterSemantics(t *testing.T) {
	repo, ctx := testRepo(t)

	seedVenue(t, repo, ctx, "Golden Palace Banquet", "Bandlaguda Jagir", "500005", 55000, 800)
	seedVenue(t, repo, ctx, "Marigold Gardens", "Chandrayangutta", "500062", 30000, 300)

	// Case-insensitive match on name.
	listed, err := repo.ListVenues(ctx, VenueFilter{Search: strPtr("golden")}, 0, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Golden Palace Banquet", listed[0].Name)

	// Match on location as well as name.
	listed, err = repo.ListVenues(ctx, VenueFilter{Search: strPtr("CHANDRA")}, 0, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Marigold Gardens", listed[0].Name)

	// Zero capacity is a real constraint, not an absent filter.
	count, err := repo.CountVenues(ctx, VenueFilter{MinCapacity: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Zero budget excludes everything priced above zero.
	count, err = repo.CountVenues(ctx, VenueFilter{MaxBudget: floatPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestVenuePagination(t *testing.T) {
	repo, ctx := testRepo(t)

	for i := 0; i < 5; i++ {
		seedVenue(t, repo, ctx, "Hall "+string(rune('A'+i)), "Bandlaguda Jagir", "500005", 30000, 300)
	}

	seen := map[string]bool{}
	for skip := int64(0); skip < 5; skip += 2 {
		page, err := repo.ListVenues(ctx, VenueFilter{}, skip, 2)
		require.NoError(t, err)
		for _, v := range page {
			assert.False(t, seen[v.ID], "venue repeated across pages")
			seen[v.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}

func TestCreateBooking(t *testing.T) {
	repo, ctx := testRepo(t)

	venue := seedVenue(t, repo, ctx, "R K Function Hall", "Bandlaguda Jagir", "500005", 40000, 500)

	b, err := repo.CreateBooking(ctx, BookingInput{
		UserID:    "u1",
		VenueID:   venue.ID,
		EventDate: time.Now().AddDate(0, 2, 0).UTC(),
		Services: []BookingService{
			{ServiceID: "s1", ProviderID: "p1", Name: "Catering", Price: 100},
			{ServiceID: "s2", ProviderID: "p2", Name: "Photography", Price: 250},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(40340), b.TotalAmount)
	assert.Equal(t, venue.Name, b.VenueName)
	assert.Equal(t, venue.Location, b.VenueLocation)
	assert.Equal(t, BookingPending, b.Status)

	stored, err := repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(40340), stored.TotalAmount)
}

func TestCreateBookingUnknownVenue(t *testing.T) {
	repo, ctx := testRepo(t)

	_, err := repo.CreateBooking(ctx, BookingInput{
		UserID:    "u1",
		VenueID:   "no-such-venue",
		EventDate: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestListUserBookingsNewestFirst(t *testing.T) {
	repo, ctx := testRepo(t)

	venue := seedVenue(t, repo, ctx, "R K Function Hall", "Bandlaguda Jagir", "500005", 40000, 500)

	first, err := repo.CreateBooking(ctx, BookingInput{UserID: "u1", VenueID: venue.ID, EventDate: time.Now().UTC()})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := repo.CreateBooking(ctx, BookingInput{UserID: "u1", VenueID: venue.ID, EventDate: time.Now().UTC()})
	require.NoError(t, err)

	bookings, err := repo.ListUserBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
}

func TestUpdateBookingStatus(t *testing.T) {
	repo, ctx := testRepo(t)

	venue := seedVenue(t, repo, ctx, "R K Function Hall", "Bandlaguda Jagir", "500005", 40000, 500)
	b, err := repo.CreateBooking(ctx, BookingInput{UserID: "u1", VenueID: venue.ID, EventDate: time.Now().UTC()})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := repo.UpdateBookingStatus(ctx, b.ID, BookingConfirmed)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, BookingConfirmed, updated.Status)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	missing, err := repo.UpdateBookingStatus(ctx, "no-such-booking", BookingConfirmed)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateUserPartial(t *testing.T) {
	repo, ctx := testRepo(t)

	u, err := repo.CreateUser(ctx, UserInput{Name: "Asha", Phone: "+91 9000000001", Email: "asha@example.com"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	name := "Asha Rao"
	updated, err := repo.UpdateUser(ctx, u.ID, UserPatch{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Asha Rao", updated.Name)
	assert.Equal(t, u.Email, updated.Email)
	assert.Equal(t, u.Phone, updated.Phone)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	missing, err := repo.UpdateUser(ctx, "no-such-user", UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBudgetProvisioningIdempotent(t *testing.T) {
	repo, ctx := testRepo(t)

	before, err := repo.GetWeddingBudget(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, before)

	first, err := repo.GetOrCreateWeddingBudget(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, first.Categories, 6)
	assert.Equal(t, float64(800000), first.TotalBudget)

	// A second read returns the persisted record, not a fresh default.
	second, err := repo.GetOrCreateWeddingBudget(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestGuestListProvisioning(t *testing.T) {
	repo, ctx := testRepo(t)

	first, err := repo.GetOrCreateGuestList(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, first.Guests)

	second, err := repo.GetOrCreateGuestList(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestTimelineProvisioning(t *testing.T) {
	repo, ctx := testRepo(t)

	first, err := repo.GetOrCreateWeddingTimeline(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, first.Items, 3)
	for _, item := range first.Items {
		assert.Equal(t, TimelinePending, item.Status)
	}

	second, err := repo.GetOrCreateWeddingTimeline(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	require.Len(t, second.Items, 3)
	assert.Equal(t, first.Items[0].ID, second.Items[0].ID)
}

func TestUpsertBudgetPreservesIdentity(t *testing.T) {
	repo, ctx := testRepo(t)

	original, err := repo.GetOrCreateWeddingBudget(ctx, "u1")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	modified := *original
	modified.TotalBudget = 900000
	modified.Categories[0].Spent = 45000

	updated, err := repo.UpsertWeddingBudget(ctx, &modified)
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Equal(t, float64(900000), updated.TotalBudget)
	assert.Equal(t, float64(45000), updated.Categories[0].Spent)
	assert.True(t, updated.UpdatedAt.After(original.UpdatedAt))

	count, err := repo.budgetsCol.CountDocuments(ctx, bson.M{"user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpsertGuestListInsertsWhenAbsent(t *testing.T) {
	repo, ctx := testRepo(t)

	g, err := repo.UpsertGuestList(ctx, &GuestList{
		UserID: "u2",
		Guests: []Guest{{Name: "Ravi", Relation: "Brother", Category: "Family"}},
	})
	require.NoError(t, err)
	require.Len(t, g.Guests, 1)
	assert.NotEmpty(t, g.ID)
	assert.NotEmpty(t, g.Guests[0].ID)
}

func TestTicketAppend(t *testing.T) {
	repo, ctx := testRepo(t)

	userID := "u1"
	ticket, err := repo.CreateTicket(ctx, TicketInput{
		UserID:  &userID,
		Subject: "Refund query",
		Message: "How do I get a refund?",
	})
	require.NoError(t, err)
	assert.Equal(t, TicketOpen, ticket.Status)
	require.Len(t, ticket.Messages, 1)
	assert.Equal(t, SenderUser, ticket.Messages[0].SenderType)
	assert.Equal(t, "How do I get a refund?", ticket.Messages[0].Message)

	updated, err := repo.AddTicketMessage(ctx, ticket.ID, MessageInput{
		Message:    "Refunds take 5-7 business days.",
		SenderType: SenderAgent,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, updated.Messages, 2)
	assert.Equal(t, ticket.Messages[0].ID, updated.Messages[0].ID)
	assert.Equal(t, SenderAgent, updated.Messages[1].SenderType)

	missing, err := repo.AddTicketMessage(ctx, "no-such-ticket", MessageInput{Message: "hi", SenderType: SenderUser})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListFAQsByDisplayOrder(t *testing.T) {
	repo, ctx := testRepo(t)

	_, err := repo.CreateFAQ(ctx, FAQInput{Question: "Third?", Answer: "c", Order: 3})
	require.NoError(t, err)
	_, err = repo.CreateFAQ(ctx, FAQInput{Question: "First?", Answer: "a", Order: 1})
	require.NoError(t, err)
	_, err = repo.CreateFAQ(ctx, FAQInput{Question: "Second?", Answer: "b", Order: 2})
	require.NoError(t, err)

	faqs, err := repo.ListFAQs(ctx)
	require.NoError(t, err)
	require.Len(t, faqs, 3)
	assert.Equal(t, "First?", faqs[0].Question)
	assert.Equal(t, "Second?", faqs[1].Question)
	assert.Equal(t, "Third?", faqs[2].Question)
}
