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

// The wedding-planning records (budget, guest list, timeline) are per-user
// singletons. Reads that find nothing provision a canonical default in a
// single upsert, so two concurrent first reads for the same user converge on
// one document. Explicit writes upsert by owner id, preserving the original
// id and created_at and refreshing only updated_at and the body fields.

func (r *Repository) GetWeddingBudget(ctx context.Context, userID string) (*WeddingBudget, error) {
	var b WeddingBudget
	if err := r.budgetsCol.FindOne(ctx, bson.M{"user_id": userID}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wedding budget: %w", err)
	}
	return &b, nil
}

func (r *Repository) GetOrCreateWeddingBudget(ctx context.Context, userID string) (*WeddingBudget, error) {
	def := DefaultWeddingBudget(userID)
	onInsert := bson.M{
		"id":           def.ID,
		"total_budget": def.TotalBudget,
		"categories":   def.Categories,
		"created_at":   def.CreatedAt,
		"updated_at":   def.UpdatedAt,
	}

	var b WeddingBudget
	err := r.budgetsCol.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": onInsert},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&b)
	if err != nil {
		return nil, fmt.Errorf("provision wedding budget: %w", err)
	}
	return &b, nil
}

func (r *Repository) UpsertWeddingBudget(ctx context.Context, b *WeddingBudget) (*WeddingBudget, error) {
	now := time.Now().UTC()
	id := b.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := r.budgetsCol.UpdateOne(ctx,
		bson.M{"user_id": b.UserID},
		bson.M{
			"$set":         bson.M{"total_budget": b.TotalBudget, "categories": b.Categories, "updated_at": now},
			"$setOnInsert": bson.M{"id": id, "created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert wedding budget: %w", err)
	}
	return r.GetWeddingBudget(ctx, b.UserID)
}

func (r *Repository) GetGuestList(ctx context.Context, userID string) (*GuestList, error) {
	var g GuestList
	if err := r.guestsCol.FindOne(ctx, bson.M{"user_id": userID}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guest list: %w", err)
	}
	return &g, nil
}

func (r *Repository) GetOrCreateGuestList(ctx context.Context, userID string) (*GuestList, error) {
	def := DefaultGuestList(userID)
	onInsert := bson.M{
		"id":         def.ID,
		"guests":     def.Guests,
		"created_at": def.CreatedAt,
		"updated_at": def.UpdatedAt,
	}

	var g GuestList
	err := r.guestsCol.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": onInsert},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&g)
	if err != nil {
		return nil, fmt.Errorf("provision guest list: %w", err)
	}
	return &g, nil
}

func (r *Repository) UpsertGuestList(ctx context.Context, g *GuestList) (*GuestList, error) {
	now := time.Now().UTC()
	id := g.ID
	if id == "" {
		id = uuid.NewString()
	}
	guests := g.Guests
	if guests == nil {
		guests = []Guest{}
	}
	for i := range guests {
		if guests[i].ID == "" {
			guests[i].ID = uuid.NewString()
		}
	}
	_, err := r.guestsCol.UpdateOne(ctx,
		bson.M{"user_id": g.UserID},
		bson.M{
			"$set":         bson.M{"guests": guests, "updated_at": now},
			"$setOnInsert": bson.M{"id": id, "created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert guest list: %w", err)
	}
	return r.GetGuestList(ctx, g.UserID)
}

func (r *Repository) GetWeddingTimeline(ctx context.Context, userID string) (*WeddingTimeline, error) {
	var t WeddingTimeline
	if err := r.timelinesCol.FindOne(ctx, bson.M{"user_id": userID}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wedding timeline: %w", err)
	}
	return &t, nil
}

func (r *Repository) GetOrCreateWeddingTimeline(ctx context.Context, userID string) (*WeddingTimeline, error) {
	def := DefaultWeddingTimeline(userID, time.Now().UTC())
	onInsert := bson.M{
		"id":         def.ID,
		"items":      def.Items,
		"created_at": def.CreatedAt,
		"updated_at": def.UpdatedAt,
	}

	var t WeddingTimeline
	err := r.timelinesCol.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": onInsert},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		return nil, fmt.Errorf("provision wedding timeline: %w", err)
	}
	return &t, nil
}

func (r *Repository) UpsertWeddingTimeline(ctx context.Context, t *WeddingTimeline) (*WeddingTimeline, error) {
	now := time.Now().UTC()
	id := t.ID
	if id == "" {
		id = uuid.NewString()
	}
	items := t.Items
	if items == nil {
		items = []TimelineItem{}
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}
	_, err := r.timelinesCol.UpdateOne(ctx,
		bson.M{"user_id": t.UserID},
		bson.M{
			"$set":         bson.M{"items": items, "updated_at": now},
			"$setOnInsert": bson.M{"id": id, "created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert wedding timeline: %w", err)
	}
	return r.GetWeddingTimeline(ctx, t.UserID)
}
