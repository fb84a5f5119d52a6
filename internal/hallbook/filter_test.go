package hallbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func TestVenueFilterEmpty(t *testing.T) {
	q := VenueFilter{}.Query()
	assert.Empty(t, q)
}

func TestVenueFilterZeroValuesAreConstraints(t *testing.T) {
	q := VenueFilter{
		MaxBudget:   floatPtr(0),
		MinCapacity: intPtr(0),
	}.Query()

	assert.Equal(t, bson.M{"$lte": float64(0)}, q["price"])
	assert.Equal(t, bson.M{"$gte": 0}, q["capacity"])
}

func TestVenueFilterAllFields(t *testing.T) {
	availability := VenueBooked
	q := VenueFilter{
		MaxBudget:    floatPtr(50000),
		MinCapacity:  intPtr(300),
		Availability: &availability,
		Pincode:      strPtr("500005"),
		Search:       strPtr("palace"),
	}.Query()

	assert.Equal(t, bson.M{"$lte": float64(50000)}, q["price"])
	assert.Equal(t, bson.M{"$gte": 300}, q["capacity"])
	assert.Equal(t, VenueBooked, q["availability"])
	assert.Equal(t, "500005", q["pincode"])

	or, ok := q["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"name": primitive.Regex{Pattern: "palace", Options: "i"}}, or[0])
	assert.Equal(t, bson.M{"location": primitive.Regex{Pattern: "palace", Options: "i"}}, or[1])
}

func TestVenueFilterSearchQuotesRegexMeta(t *testing.T) {
	q := VenueFilter{Search: strPtr("a.b(c)")}.Query()

	or, ok := q["$or"].(bson.A)
	require.True(t, ok)
	re := or[0].(bson.M)["name"].(primitive.Regex)
	assert.Equal(t, `a\.b\(c\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestVenueFilterAbsentFieldsImposeNoConstraint(t *testing.T) {
	q := VenueFilter{Pincode: strPtr("500005")}.Query()

	assert.Len(t, q, 1)
	assert.NotContains(t, q, "price")
	assert.NotContains(t, q, "capacity")
	assert.NotContains(t, q, "availability")
	assert.NotContains(t, q, "$or")
}
