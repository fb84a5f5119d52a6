package hallbook

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VenueFilter holds the optional venue search constraints. Nil means the
// constraint was not supplied; a zero value (budget 0, capacity 0) is a real
// constraint and is still applied.
type VenueFilter struct {
	MaxBudget    *float64
	MinCapacity  *int
	Availability *Availability
	Pincode      *string
	Search       *string
}

// Query translates the filter into a Mongo predicate. ListVenues and
// CountVenues both go through here, so a page listing and its total count can
// never disagree on which venues match.
func (f VenueFilter) Query() bson.M {
	query := bson.M{}

	if f.MaxBudget != nil {
		query["price"] = bson.M{"$lte": *f.MaxBudget}
	}
	if f.MinCapacity != nil {
		query["capacity"] = bson.M{"$gte": *f.MinCapacity}
	}
	if f.Availability != nil {
		query["availability"] = *f.Availability
	}
	if f.Pincode != nil {
		query["pincode"] = *f.Pincode
	}
	if f.Search != nil {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(*f.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"location": re},
		}
	}

	return query
}
