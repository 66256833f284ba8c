package availability

import (
	"time"

	"github.com/simplyseat/reservation-service/pkg/types"
)

// DayQuery параметры запроса доступности на один день.
type DayQuery struct {
	VenueID   int64
	ServiceID int64
	Date      time.Time
	// PartySize размер группы, по умолчанию 1.
	PartySize int
	// StaffMemberID вернуть слоты только указанного сотрудника.
	StaffMemberID *int64
	// WindowStart и WindowEnd границы временного окна (включительно по началу слота).
	// Либо оба заданы, либо оба пустые.
	WindowStart types.TimeString
	WindowEnd   types.TimeString
	// ExcludeBookingID бронь, которую следует игнорировать при расчёте занятости
	// (используется при переносе существующей брони).
	ExcludeBookingID *int64
}

// RangeQuery параметры запроса доступности на диапазон дат.
type RangeQuery struct {
	VenueID       int64
	ServiceID     int64
	StartDate     time.Time
	EndDate       time.Time
	PartySize     int
	StaffMemberID *int64
}

// SlotQuery параметры точечной проверки одного слота.
type SlotQuery struct {
	VenueID       int64
	ServiceID     int64
	StaffMemberID *int64
	Date          time.Time
	// StartTime и EndTime в формате HH:MM. Валидируются внутри проверки.
	StartTime        string
	EndTime          string
	PartySize        int
	ExcludeBookingID *int64
}

// SlotCheck результат точечной проверки слота.
// Reason заполняется только при Available == false.
type SlotCheck struct {
	Available bool
	Reason    string
}

// BookingRequest запрос на бронирование для многоступенчатой валидации.
type BookingRequest struct {
	VenueID       int64
	ServiceID     int64
	StaffMemberID *int64
	Date          time.Time
	StartTime     string
	EndTime       string
	PartySize     int
	// ExcludeBookingID игнорируемая бронь при финальной проверке доступности.
	ExcludeBookingID *int64
	// BypassAdvanceCheck пропустить проверку минимального срока до брони
	// (для операций персонала заведения).
	BypassAdvanceCheck bool
}

// ValidationResult результат валидации запроса на бронирование.
// Errors содержит все найденные проблемы, а не только первую.
type ValidationResult struct {
	Valid  bool
	Errors []string
}
