package hallbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTotal(t *testing.T) {
	venue := &Venue{Price: 40000}

	services := []BookingService{
		{ServiceID: "s1", ProviderID: "p1", Name: "Catering", Price: 100},
		{ServiceID: "s2", ProviderID: "p2", Name: "Photography", Price: 250},
	}
	assert.Equal(t, float64(40340), bookingTotal(venue, services))
}

func TestBookingTotalNoServices(t *testing.T) {
	venue := &Venue{Price: 35000}

	assert.Equal(t, float64(35000), bookingTotal(venue, nil))
	assert.Equal(t, float64(35000), bookingTotal(venue, []BookingService{}))
}

func TestUserPatchSetDoc(t *testing.T) {
	name := "Asha"
	empty := ""
	set := UserPatch{Name: &name, Phone: &empty}.setDoc()

	assert.Equal(t, "Asha", set["name"])
	assert.Equal(t, "", set["phone"])
	assert.NotContains(t, set, "email")
	assert.NotContains(t, set, "profile_image")
}
