package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() BookingRequest {
	return BookingRequest{
		VenueID:   testVenueID,
		ServiceID: testTableServiceID,
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		PartySize: 2,
	}
}

func TestValidateBookingRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("clean request passes all stages", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")

		result, err := f.service().ValidateBookingRequest(ctx, validRequest())
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("errors accumulate instead of stopping at the first", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		req := validRequest()
		req.PartySize = 0
		req.StartTime = "10am"
		req.Date = testNow.AddDate(0, 0, -1)

		result, err := f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.ElementsMatch(t, []string{
			"Party size must be at least 1",
			"Invalid time format. Use HH:MM",
			"Cannot book a date in the past",
		}, result.Errors)
	})

	t.Run("oversized party points to the phone", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		req := validRequest()
		req.PartySize = 9

		result, err := f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors,
			"Party size must be between 1 and 8. For larger groups please call the venue directly.")
	})

	t.Run("end not after start", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		req := validRequest()
		req.StartTime = "11:00"
		req.EndTime = "11:00"

		result, err := f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, result.Errors, "End time must be after start time")
	})

	t.Run("advance-hours stage respects the bypass flag", func(t *testing.T) {
		f := newFixture()
		f.venues.venues[testVenueID].BookingAdvanceHours = 48
		f.addVenueRule(testDate, "09:00", "17:00")
		f.clock = fakeClock{now: testDate.Add(-2 * time.Hour)} // 8:00 дня брони

		req := validRequest()
		result, err := f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Bookings must be made at least 48 hours in advance.")

		req.BypassAdvanceCheck = true
		result, err = f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("exactly at the advance boundary passes", func(t *testing.T) {
		f := newFixture()
		f.venues.venues[testVenueID].BookingAdvanceHours = 48
		f.addVenueRule(testDate, "09:00", "17:00")
		// Ровно 48 часов до начала 10:00.
		f.clock = fakeClock{now: testDate.AddDate(0, 0, -2).Add(10 * time.Hour)}

		result, err := f.service().ValidateBookingRequest(ctx, validRequest())
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("unknown venue short-circuits", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.VenueID = 99

		result, err := f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Venue not found or inactive"}, result.Errors)
	})

	t.Run("staff service demands a capable staff member", func(t *testing.T) {
		f := newFixture()
		f.addStaffRule(testStaffAnna, testDate, "09:00", "17:00")
		req := validRequest()
		req.ServiceID = testHairServiceID
		req.PartySize = 1

		result, err := f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, result.Errors, "Staff member is required for this service")

		incapable := int64(77)
		req.StaffMemberID = &incapable
		result, err = f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, result.Errors, "Selected staff member cannot perform this service")

		req.StaffMemberID = &testStaffAnna
		result, err = f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("final stage reports slot conflicts", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		f.addBooking(testTableServiceID, nil, testDate, "10:00", "11:00", 10)

		result, err := f.service().ValidateBookingRequest(ctx, validRequest())
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Insufficient capacity for requested party size"}, result.Errors)
	})

	t.Run("final stage is skipped when earlier stages failed", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "17:00")
		f.addBooking(testTableServiceID, nil, testDate, "10:00", "11:00", 10)
		req := validRequest()
		req.PartySize = 9

		result, err := f.service().ValidateBookingRequest(ctx, req)
		require.NoError(t, err)
		// Только ошибка размера группы, без результата финальной проверки.
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Party size must be between 1 and 8.")
	})
}
