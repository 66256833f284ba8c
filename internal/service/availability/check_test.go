package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkQuery() SlotQuery {
	return SlotQuery{
		VenueID:   testVenueID,
		ServiceID: testTableServiceID,
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		PartySize: 2,
	}
}

func TestCheckSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("available slot", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")

		check, err := f.service().CheckSlot(ctx, checkQuery())
		require.NoError(t, err)
		assert.True(t, check.Available)
		assert.Empty(t, check.Reason)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture()
		query := checkQuery()
		query.ServiceID = 99

		check, err := f.service().CheckSlot(ctx, query)
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, "Service not found or inactive", check.Reason)
	})

	t.Run("staff service without staff member", func(t *testing.T) {
		f := newFixture()
		query := checkQuery()
		query.ServiceID = testHairServiceID

		check, err := f.service().CheckSlot(ctx, query)
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, "Staff member is required for this service", check.Reason)
	})

	t.Run("party larger than service capacity", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		query := checkQuery()
		query.PartySize = 11

		check, err := f.service().CheckSlot(ctx, query)
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, "Party size exceeds service capacity (max: 10)", check.Reason)
	})

	t.Run("malformed times fail closed", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		query := checkQuery()
		query.StartTime = "10:0"

		check, err := f.service().CheckSlot(ctx, query)
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, "Invalid time format. Use HH:MM", check.Reason)
	})

	t.Run("closed day", func(t *testing.T) {
		f := newFixture()

		check, err := f.service().CheckSlot(ctx, checkQuery())
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, "Venue closed on this day", check.Reason)
	})

	t.Run("slot must fit inside one rule", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "10:30")
		f.addVenueRule(testDate, "10:30", "12:00")

		// Слот пересекает границу двух правил.
		check, err := f.service().CheckSlot(ctx, checkQuery())
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, "Requested time is outside venue opening hours", check.Reason)
	})

	t.Run("insufficient shared capacity", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		f.addBooking(testTableServiceID, nil, testDate, "10:00", "11:00", 9)

		check, err := f.service().CheckSlot(ctx, checkQuery())
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, "Insufficient capacity for requested party size", check.Reason)
	})

	t.Run("staff slot already booked by any service", func(t *testing.T) {
		f := newFixture()
		f.addStaffRule(testStaffAnna, testDate, "09:00", "17:00")
		f.addBooking(999, &testStaffAnna, testDate, "10:30", "11:30", 1)

		query := checkQuery()
		query.ServiceID = testHairServiceID
		query.StaffMemberID = &testStaffAnna
		query.PartySize = 1

		check, err := f.service().CheckSlot(ctx, query)
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, "Time slot already booked", check.Reason)
	})

	t.Run("excluded booking is ignored", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		existing := f.addBooking(testTableServiceID, nil, testDate, "10:00", "11:00", 10)

		query := checkQuery()
		query.ExcludeBookingID = &existing.ID

		check, err := f.service().CheckSlot(ctx, query)
		require.NoError(t, err)
		assert.True(t, check.Available)
	})
}
