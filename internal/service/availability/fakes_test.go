package availability

import (
	"context"
	"time"

	"github.com/simplyseat/reservation-service/internal/domain"
	storageCatalog "github.com/simplyseat/reservation-service/internal/infra/storage/catalog"
	storageVenue "github.com/simplyseat/reservation-service/internal/infra/storage/venue"
)

// Фейки репозиториев для тестов сервиса. Повторяют контракты хранилища,
// включая его sentinel-ошибки.

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	venue, ok := f.venues[id]
	if !ok || !venue.IsActive {
		return nil, storageVenue.ErrVenueNotFound
	}
	return venue, nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.Service
	staff    map[int64][]*domain.StaffMember
	capable  map[[2]int64]bool
}

func (f *fakeCatalogRepo) GetService(_ context.Context, serviceID, venueID int64) (*domain.Service, error) {
	service, ok := f.services[serviceID]
	if !ok || service.VenueID != venueID || !service.IsActive {
		return nil, storageCatalog.ErrServiceNotFound
	}
	return service, nil
}

func (f *fakeCatalogRepo) GetStaffForService(_ context.Context, serviceID int64) ([]*domain.StaffMember, error) {
	return f.staff[serviceID], nil
}

func (f *fakeCatalogRepo) CanStaffPerformService(_ context.Context, staffMemberID, serviceID int64) (bool, error) {
	return f.capable[[2]int64{staffMemberID, serviceID}], nil
}

type fakeRuleRepo struct {
	rules []*domain.AvailabilityRule
}

func (f *fakeRuleRepo) GetVenueRulesForDay(_ context.Context, venueID int64, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	var result []*domain.AvailabilityRule
	for _, rule := range f.rules {
		if rule.Scope == domain.RuleScopeVenue && rule.VenueID == venueID && rule.DayOfWeek == dayOfWeek {
			result = append(result, rule)
		}
	}
	return result, nil
}

func (f *fakeRuleRepo) GetStaffRulesForDay(_ context.Context, staffMemberID int64, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	var result []*domain.AvailabilityRule
	for _, rule := range f.rules {
		if rule.Scope == domain.RuleScopeStaff && rule.StaffMemberID != nil &&
			*rule.StaffMemberID == staffMemberID && rule.DayOfWeek == dayOfWeek {
			result = append(result, rule)
		}
	}
	return result, nil
}

func (f *fakeRuleRepo) GetVenueRules(_ context.Context, venueID int64) ([]*domain.AvailabilityRule, error) {
	var result []*domain.AvailabilityRule
	for _, rule := range f.rules {
		if rule.Scope == domain.RuleScopeVenue && rule.VenueID == venueID {
			result = append(result, rule)
		}
	}
	return result, nil
}

func (f *fakeRuleRepo) GetStaffRules(_ context.Context, staffMemberIDs []int64) ([]*domain.AvailabilityRule, error) {
	wanted := make(map[int64]bool, len(staffMemberIDs))
	for _, id := range staffMemberIDs {
		wanted[id] = true
	}
	var result []*domain.AvailabilityRule
	for _, rule := range f.rules {
		if rule.Scope == domain.RuleScopeStaff && rule.StaffMemberID != nil && wanted[*rule.StaffMemberID] {
			result = append(result, rule)
		}
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByVenueWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range f.bookings {
		if booking.VenueID != filter.VenueID {
			continue
		}
		if filter.ServiceID != nil && booking.ServiceID != *filter.ServiceID {
			continue
		}
		if filter.StaffOnly && booking.StaffMemberID == nil {
			continue
		}
		if filter.StaffMemberID != nil &&
			(booking.StaffMemberID == nil || *booking.StaffMemberID != *filter.StaffMemberID) {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		if filter.ExcludeID != nil && booking.ID == *filter.ExcludeID {
			continue
		}
		if filter.StartDate != nil && booking.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && booking.BookingDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}
