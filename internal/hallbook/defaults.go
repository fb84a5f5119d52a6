package hallbook

import (
	"time"

	"github.com/google/uuid"
)

// Canonical starter records, persisted the first time a user's budget, guest
// list or timeline is read and found absent.

func DefaultWeddingBudget(userID string) *WeddingBudget {
	now := time.Now().UTC()
	return &WeddingBudget{
		ID:          uuid.NewString(),
		UserID:      userID,
		TotalBudget: 800000,
		Categories: []BudgetCategory{
			{Name: "Venue", Budgeted: 60000, Spent: 0, Color: "#800000"},
			{Name: "Catering", Budgeted: 180000, Spent: 0, Color: "#FFD700"},
			{Name: "Decoration", Budgeted: 80000, Spent: 0, Color: "#008080"},
			{Name: "Photography", Budgeted: 50000, Spent: 0, Color: "#FF6B6B"},
			{Name: "Flowers", Budgeted: 15000, Spent: 0, Color: "#4ECDC4"},
			{Name: "Miscellaneous", Budgeted: 30000, Spent: 0, Color: "#95A5A6"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func DefaultGuestList(userID string) *GuestList {
	now := time.Now().UTC()
	return &GuestList{
		ID:        uuid.NewString(),
		UserID:    userID,
		Guests:    []Guest{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func DefaultWeddingTimeline(userID string, now time.Time) *WeddingTimeline {
	return &WeddingTimeline{
		ID:     uuid.NewString(),
		UserID: userID,
		Items: []TimelineItem{
			{
				ID:          uuid.NewString(),
				Date:        now.AddDate(0, 0, 30),
				Time:        "10:00",
				Event:       "Venue Booking Confirmation",
				Description: "Finalize venue booking and make advance payment",
				Status:      TimelinePending,
			},
			{
				ID:          uuid.NewString(),
				Date:        now.AddDate(0, 0, 45),
				Time:        "14:00",
				Event:       "Catering Menu Selection",
				Description: "Meet with caterer to finalize menu and guest count",
				Status:      TimelinePending,
			},
			{
				ID:          uuid.NewString(),
				Date:        now.AddDate(0, 0, 60),
				Time:        "11:00",
				Event:       "Decoration Theme Discussion",
				Description: "Discuss decoration themes and color schemes",
				Status:      TimelinePending,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
