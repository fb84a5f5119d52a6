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

type TicketInput struct {
	UserID  *string
	Subject string
	Message string
}

// CreateTicket opens a ticket seeded with exactly one message from the user.
func (r *Repository) CreateTicket(ctx context.Context, in TicketInput) (*SupportTicket, error) {
	now := time.Now().UTC()
	t := &SupportTicket{
		ID:      uuid.NewString(),
		UserID:  in.UserID,
		Subject: in.Subject,
		Status:  TicketOpen,
		Messages: []ChatMessage{
			{
				ID:         uuid.NewString(),
				UserID:     in.UserID,
				Message:    in.Message,
				SenderType: SenderUser,
				Timestamp:  now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.ticketsCol.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert support ticket: %w", err)
	}
	return t, nil
}

func (r *Repository) GetTicket(ctx context.Context, id string) (*SupportTicket, error) {
	var t SupportTicket
	if err := r.ticketsCol.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get support ticket: %w", err)
	}
	return &t, nil
}

type MessageInput struct {
	UserID     *string
	Message    string
	SenderType SenderType
}

// AddTicketMessage appends to the ticket's message sequence. Messages are
// never reordered or dropped. Returns (nil, nil) when the ticket id does not
// match any document.
func (r *Repository) AddTicketMessage(ctx context.Context, ticketID string, in MessageInput) (*SupportTicket, error) {
	now := time.Now().UTC()
	msg := ChatMessage{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		Message:    in.Message,
		SenderType: in.SenderType,
		Timestamp:  now,
	}

	res, err := r.ticketsCol.UpdateOne(ctx, bson.M{"id": ticketID}, bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updated_at": now},
	})
	if err != nil {
		return nil, fmt.Errorf("append ticket message: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetTicket(ctx, ticketID)
}

type FAQInput struct {
	Question string
	Answer   string
	Category string
	Order    int
}

func (r *Repository) CreateFAQ(ctx context.Context, in FAQInput) (*FAQ, error) {
	f := &FAQ{
		ID:       uuid.NewString(),
		Question: in.Question,
		Answer:   in.Answer,
		Category: in.Category,
		Order:    in.Order,
	}
	if f.Category == "" {
		f.Category = "general"
	}
	if _, err := r.faqsCol.InsertOne(ctx, f); err != nil {
		return nil, fmt.Errorf("insert faq: %w", err)
	}
	return f, nil
}

// ListFAQs returns every FAQ sorted by display order, ascending.
func (r *Repository) ListFAQs(ctx context.Context) ([]FAQ, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.faqsCol.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer cur.Close(ctx)

	result := []FAQ{}
	for cur.Next(ctx) {
		var f FAQ
		if err := cur.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode faq: %w", err)
		}
		result = append(result, f)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list faqs cursor: %w", err)
	}
	return result, nil
}
