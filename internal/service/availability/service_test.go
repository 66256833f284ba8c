package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/pkg/types"
)

const (
	testVenueID        = int64(1)
	testTableServiceID = int64(10) // общая вместимость
	testHairServiceID  = int64(20) // персональный исполнитель
)

var (
	testStaffAnna  = int64(1)
	testStaffBoris = int64(2)
)

// testDate далёкая дата, чтобы фильтр минимального срока не вмешивался.
var testDate = time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

// testNow за месяц до testDate.
var testNow = time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

type fixture struct {
	venues   *fakeVenueRepo
	catalog  *fakeCatalogRepo
	rules    *fakeRuleRepo
	bookings *fakeBookingRepo
	clock    fakeClock
}

func newFixture() *fixture {
	return &fixture{
		venues: &fakeVenueRepo{venues: map[int64]*domain.Venue{
			testVenueID: {
				ID:                  testVenueID,
				Name:                "Trattoria Roma",
				Type:                domain.VenueTypeRestaurant,
				BookingAdvanceHours: 2,
				IsActive:            true,
			},
		}},
		catalog: &fakeCatalogRepo{
			services: map[int64]*domain.Service{
				testTableServiceID: {
					ID:              testTableServiceID,
					VenueID:         testVenueID,
					Name:            "Dinner table",
					DurationMinutes: 60,
					Capacity:        10,
					RequiresStaff:   false,
					IsActive:        true,
				},
				testHairServiceID: {
					ID:              testHairServiceID,
					VenueID:         testVenueID,
					Name:            "Haircut",
					DurationMinutes: 60,
					Capacity:        1,
					RequiresStaff:   true,
					IsActive:        true,
				},
			},
			staff: map[int64][]*domain.StaffMember{
				testHairServiceID: {
					{ID: testStaffAnna, VenueID: testVenueID, Name: "Anna", IsActive: true},
					{ID: testStaffBoris, VenueID: testVenueID, Name: "Boris", IsActive: true},
				},
			},
			capable: map[[2]int64]bool{
				{testStaffAnna, testHairServiceID}:  true,
				{testStaffBoris, testHairServiceID}: true,
			},
		},
		rules:    &fakeRuleRepo{},
		bookings: &fakeBookingRepo{},
		clock:    fakeClock{now: testNow},
	}
}

func (f *fixture) service() *Service {
	return NewService(f.venues, f.catalog, f.rules, f.bookings, f.clock, nopLogger{}, 0)
}

func (f *fixture) addVenueRule(date time.Time, start, end string) {
	f.rules.rules = append(f.rules.rules, &domain.AvailabilityRule{
		ID:        int64(len(f.rules.rules) + 1),
		Scope:     domain.RuleScopeVenue,
		VenueID:   testVenueID,
		DayOfWeek: int(date.Weekday()),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	})
}

func (f *fixture) addStaffRule(staffID int64, date time.Time, start, end string) {
	f.rules.rules = append(f.rules.rules, &domain.AvailabilityRule{
		ID:            int64(len(f.rules.rules) + 1),
		Scope:         domain.RuleScopeStaff,
		VenueID:       testVenueID,
		StaffMemberID: &staffID,
		DayOfWeek:     int(date.Weekday()),
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
	})
}

func (f *fixture) addBooking(serviceID int64, staffID *int64, date time.Time, start, end string, partySize int) *domain.Booking {
	booking := &domain.Booking{
		ID:            int64(len(f.bookings.bookings) + 1),
		VenueID:       testVenueID,
		ServiceID:     serviceID,
		StaffMemberID: staffID,
		UserID:        100,
		BookingDate:   date,
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
		PartySize:     partySize,
		Status:        domain.BookingStatusConfirmed,
	}
	f.bookings.bookings = append(f.bookings.bookings, booking)
	return booking
}

func TestGetDayAvailability_SharedCapacity(t *testing.T) {
	ctx := context.Background()

	t.Run("open day is sliced into duration-sized slots", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "12:00")

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:   testVenueID,
			ServiceID: testTableServiceID,
			Date:      testDate,
			PartySize: 2,
		})
		require.NoError(t, err)
		assert.False(t, day.IsClosed)
		assert.False(t, day.WithinAdvanceHours)
		assert.Equal(t, [][2]string{
			{"09:00", "10:00"},
			{"10:00", "11:00"},
			{"11:00", "12:00"},
		}, slotTimes(day.TimeSlots))
		assert.Equal(t, 3, day.OpenSlotCount())
	})

	t.Run("full-capacity booking closes only the overlapped slot", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "12:00")
		f.addBooking(testTableServiceID, nil, testDate, "10:00", "11:00", 10)

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:   testVenueID,
			ServiceID: testTableServiceID,
			Date:      testDate,
			PartySize: 2,
		})
		require.NoError(t, err)
		require.Len(t, day.TimeSlots, 3)
		assert.True(t, day.TimeSlots[0].Available)
		assert.False(t, day.TimeSlots[1].Available)
		assert.Equal(t, 0, *day.TimeSlots[1].RemainingCapacity)
		assert.True(t, day.TimeSlots[2].Available)
	})

	t.Run("no rules for the weekday means closed day", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate.AddDate(0, 0, 1), "09:00", "12:00")

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:   testVenueID,
			ServiceID: testTableServiceID,
			Date:      testDate,
		})
		require.NoError(t, err)
		assert.True(t, day.IsClosed)
		assert.Empty(t, day.TimeSlots)
		assert.False(t, day.WithinAdvanceHours)
	})

	t.Run("lead-time filter distinguishes closed from too-late", func(t *testing.T) {
		f := newFixture()
		f.venues.venues[testVenueID].BookingAdvanceHours = 48
		f.addVenueRule(testDate, "09:00", "12:00")
		// Меньше 48 часов до каждого слота.
		f.clock = fakeClock{now: testDate.Add(-3 * time.Hour)}

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:   testVenueID,
			ServiceID: testTableServiceID,
			Date:      testDate,
		})
		require.NoError(t, err)
		assert.False(t, day.IsClosed)
		assert.True(t, day.WithinAdvanceHours)
		assert.Empty(t, day.TimeSlots)
		assert.Equal(t, 48, day.BookingAdvanceHours)
	})

	t.Run("time window narrows returned slots", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "15:00")

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:     testVenueID,
			ServiceID:   testTableServiceID,
			Date:        testDate,
			WindowStart: "10:00",
			WindowEnd:   "12:00",
		})
		require.NoError(t, err)
		assert.Equal(t, [][2]string{
			{"10:00", "11:00"},
			{"11:00", "12:00"},
			{"12:00", "13:00"},
		}, slotTimes(day.TimeSlots))
	})

	t.Run("excluded booking does not count against capacity", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "10:00", "11:00")
		existing := f.addBooking(testTableServiceID, nil, testDate, "10:00", "11:00", 10)

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:          testVenueID,
			ServiceID:        testTableServiceID,
			Date:             testDate,
			ExcludeBookingID: &existing.ID,
		})
		require.NoError(t, err)
		require.Len(t, day.TimeSlots, 1)
		assert.True(t, day.TimeSlots[0].Available)
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newFixture()
		_, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:   99,
			ServiceID: testTableServiceID,
			Date:      testDate,
		})
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture()
		_, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:   testVenueID,
			ServiceID: 99,
			Date:      testDate,
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestGetDayAvailability_StaffExclusive(t *testing.T) {
	ctx := context.Background()

	t.Run("slots are expanded per staff member", func(t *testing.T) {
		f := newFixture()
		f.addStaffRule(testStaffAnna, testDate, "09:00", "12:00")
		f.addStaffRule(testStaffBoris, testDate, "09:00", "11:00")

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:   testVenueID,
			ServiceID: testHairServiceID,
			Date:      testDate,
		})
		require.NoError(t, err)
		// 3 слота Анны + 2 слота Бориса.
		assert.Len(t, day.TimeSlots, 5)
		assert.Equal(t, 5, day.OpenSlotCount())
	})

	t.Run("staff booking of another service still blocks their slot", func(t *testing.T) {
		f := newFixture()
		f.addStaffRule(testStaffAnna, testDate, "09:00", "12:00")
		f.addBooking(999, &testStaffAnna, testDate, "10:00", "11:00", 1)

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:   testVenueID,
			ServiceID: testHairServiceID,
			Date:      testDate,
		})
		require.NoError(t, err)
		require.Len(t, day.TimeSlots, 3)
		assert.True(t, day.TimeSlots[0].Available)
		assert.False(t, day.TimeSlots[1].Available)
		assert.True(t, day.TimeSlots[2].Available)
	})

	t.Run("staff filter narrows expansion to one member", func(t *testing.T) {
		f := newFixture()
		f.addStaffRule(testStaffAnna, testDate, "09:00", "12:00")
		f.addStaffRule(testStaffBoris, testDate, "09:00", "12:00")

		day, err := f.service().GetDayAvailability(ctx, DayQuery{
			VenueID:       testVenueID,
			ServiceID:     testHairServiceID,
			Date:          testDate,
			StaffMemberID: &testStaffBoris,
		})
		require.NoError(t, err)
		require.Len(t, day.TimeSlots, 3)
		for _, slot := range day.TimeSlots {
			require.NotNil(t, slot.StaffMemberID)
			assert.Equal(t, testStaffBoris, *slot.StaffMemberID)
		}
	})
}

func TestGetRangeAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("range result matches day-by-day computation", func(t *testing.T) {
		f := newFixture()
		f.addVenueRule(testDate, "09:00", "12:00")
		f.addVenueRule(testDate.AddDate(0, 0, 1), "14:00", "16:00")
		f.addBooking(testTableServiceID, nil, testDate, "10:00", "11:00", 10)
		svc := f.service()

		endDate := testDate.AddDate(0, 0, 2)
		days, err := svc.GetRangeAvailability(ctx, RangeQuery{
			VenueID:   testVenueID,
			ServiceID: testTableServiceID,
			StartDate: testDate,
			EndDate:   endDate,
			PartySize: 2,
		})
		require.NoError(t, err)
		require.Len(t, days, 3)

		for i, day := range days {
			single, err := svc.GetDayAvailability(ctx, DayQuery{
				VenueID:   testVenueID,
				ServiceID: testTableServiceID,
				Date:      testDate.AddDate(0, 0, i),
				PartySize: 2,
			})
			require.NoError(t, err)
			assert.Equal(t, single.IsClosed, day.IsClosed, "day %d", i)
			assert.Equal(t, single.TimeSlots, day.TimeSlots, "day %d", i)
		}

		// Третий день без правил — закрыт.
		assert.True(t, days[2].IsClosed)
	})

	t.Run("staff range uses batched rules", func(t *testing.T) {
		f := newFixture()
		f.addStaffRule(testStaffAnna, testDate, "09:00", "11:00")
		f.addStaffRule(testStaffBoris, testDate.AddDate(0, 0, 1), "09:00", "11:00")

		days, err := f.service().GetRangeAvailability(ctx, RangeQuery{
			VenueID:   testVenueID,
			ServiceID: testHairServiceID,
			StartDate: testDate,
			EndDate:   testDate.AddDate(0, 0, 1),
		})
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Len(t, days[0].TimeSlots, 2)
		assert.Len(t, days[1].TimeSlots, 2)
		assert.Equal(t, testStaffAnna, *days[0].TimeSlots[0].StaffMemberID)
		assert.Equal(t, testStaffBoris, *days[1].TimeSlots[0].StaffMemberID)
	})

	t.Run("range longer than the cap is rejected", func(t *testing.T) {
		f := newFixture()
		_, err := f.service().GetRangeAvailability(ctx, RangeQuery{
			VenueID:   testVenueID,
			ServiceID: testTableServiceID,
			StartDate: testDate,
			EndDate:   testDate.AddDate(0, 0, domain.DefaultAvailabilityRangeMaxDays),
		})
		assert.ErrorIs(t, err, ErrRangeTooLarge)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		f := newFixture()
		_, err := f.service().GetRangeAvailability(ctx, RangeQuery{
			VenueID:   testVenueID,
			ServiceID: testTableServiceID,
			StartDate: testDate,
			EndDate:   testDate.AddDate(0, 0, -1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
