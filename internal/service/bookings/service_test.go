package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplyseat/reservation-service/internal/domain"
	storageBooking "github.com/simplyseat/reservation-service/internal/infra/storage/booking"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	repo := &fakeRepo{bookings: make(map[int64]*domain.Booking)}
	for _, booking := range bookings {
		repo.bookings[booking.ID] = booking
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, storageBooking.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range f.bookings {
		if booking.UserID != userID {
			continue
		}
		if status != nil && booking.Status != *status {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

func (f *fakeRepo) GetByVenueWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range f.bookings {
		if booking.VenueID == filter.VenueID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return storageBooking.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	booking, ok := f.bookings[id]
	if !ok {
		return storageBooking.ErrBookingNotFound
	}
	now := time.Now()
	booking.Status = domain.BookingStatusCancelled
	booking.CancellationReason = &reason
	booking.CancelledAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:      id,
		VenueID: 1,
		UserID:  userID,
		Status:  domain.BookingStatusConfirmed,
	}
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(confirmedBooking(1, 100)), nopLogger{})

	t.Run("owner reads own booking", func(t *testing.T) {
		booking, err := svc.GetByID(ctx, 1, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1), booking.ID)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 1, 200)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 99, 100)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetUserBookings(t *testing.T) {
	ctx := context.Background()
	cancelled := confirmedBooking(2, 100)
	cancelled.Status = domain.BookingStatusCancelled
	svc := NewService(newFakeRepo(confirmedBooking(1, 100), cancelled), nopLogger{})

	t.Run("user sees own bookings", func(t *testing.T) {
		found, err := svc.GetUserBookings(ctx, 100, 100, nil)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("status filter applies", func(t *testing.T) {
		status := domain.BookingStatusCancelled
		found, err := svc.GetUserBookings(ctx, 100, 100, &status)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, int64(2), found[0].ID)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		status := domain.BookingStatus("bogus")
		_, err := svc.GetUserBookings(ctx, 100, 100, &status)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("foreign history is off limits", func(t *testing.T) {
		_, err := svc.GetUserBookings(ctx, 100, 200, nil)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels with a reason", func(t *testing.T) {
		svc := NewService(newFakeRepo(confirmedBooking(1, 100)), nopLogger{})

		booking, err := svc.Cancel(ctx, 1, 100, "  plans changed  ")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
		require.NotNil(t, booking.CancellationReason)
		assert.Equal(t, "plans changed", *booking.CancellationReason)
		assert.NotNil(t, booking.CancelledAt)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		completed := confirmedBooking(1, 100)
		completed.Status = domain.BookingStatusCompleted
		svc := NewService(newFakeRepo(completed), nopLogger{})

		_, err := svc.Cancel(ctx, 1, 100, "")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("double cancel is rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(confirmedBooking(1, 100)), nopLogger{})

		_, err := svc.Cancel(ctx, 1, 100, "")
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, 1, 100, "again")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		svc := NewService(newFakeRepo(confirmedBooking(1, 100)), nopLogger{})

		_, err := svc.Cancel(ctx, 1, 200, "")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(confirmedBooking(1, 100)), nopLogger{})

	t.Run("valid transition", func(t *testing.T) {
		booking, err := svc.UpdateStatus(ctx, 1, domain.BookingStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, 1, domain.BookingStatus("bogus"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
