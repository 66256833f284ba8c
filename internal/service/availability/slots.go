package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/pkg/types"
)

// generateSlots нарезает правило доступности на слоты длительностью услуги.
// Шаг нарезки равен длительности: слоты не перекрываются. Последний неполный
// слот отбрасывается. Для ночных правил времена после полуночи переводятся
// обратно в формат HH:MM следующих суток.
func generateSlots(rule *domain.AvailabilityRule, durationMinutes int, staffMemberID *int64) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: non-positive slot duration %d", ErrInvalidInput, durationMinutes)
	}

	window, err := newInterval(rule.StartTime, rule.EndTime)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, window.duration()/durationMinutes)
	for cur := window.start; cur+durationMinutes <= window.end; cur += durationMinutes {
		slots = append(slots, domain.TimeSlot{
			StartTime:     types.FromMinutes(cur),
			EndTime:       types.FromMinutes(cur + durationMinutes),
			Available:     true,
			StaffMemberID: staffMemberID,
		})
	}
	return slots, nil
}

// slotKey ключ дедупликации слота.
type slotKey struct {
	start types.TimeString
	end   types.TimeString
	staff int64
}

func keyOf(slot domain.TimeSlot) slotKey {
	k := slotKey{start: slot.StartTime, end: slot.EndTime, staff: -1}
	if slot.StaffMemberID != nil {
		k.staff = *slot.StaffMemberID
	}
	return k
}

// dedupeAndSortSlots убирает дубликаты по (начало, конец, сотрудник) и сортирует
// по времени начала, затем по сотруднику. Результат не зависит от порядка правил.
func dedupeAndSortSlots(slots []domain.TimeSlot) []domain.TimeSlot {
	seen := make(map[slotKey]struct{}, len(slots))
	result := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		key := keyOf(slot)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, slot)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		}
		if result[i].EndTime != result[j].EndTime {
			return result[i].EndTime.IsBefore(result[j].EndTime)
		}
		return keyOf(result[i]).staff < keyOf(result[j]).staff
	})
	return result
}

// filterByLeadTime оставляет только слоты, до начала которых осталось не меньше
// advanceHours часов. Слот ровно на границе порога проходит фильтр.
// Второй результат — true, если фильтр отсёк все имевшиеся слоты.
func filterByLeadTime(slots []domain.TimeSlot, date time.Time, now time.Time, advanceHours int) ([]domain.TimeSlot, bool) {
	if advanceHours <= 0 || len(slots) == 0 {
		return slots, false
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	kept := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		minutes, err := slot.StartTime.Minutes()
		if err != nil {
			continue
		}
		slotStart := dayStart.Add(time.Duration(minutes) * time.Minute)
		if slotStart.Sub(now).Hours() >= float64(advanceHours) {
			kept = append(kept, slot)
		}
	}
	return kept, len(kept) == 0
}

// filterByWindow оставляет слоты, начинающиеся внутри окна [from, to] включительно.
// Пустое окно пропускает всё.
func filterByWindow(slots []domain.TimeSlot, from, to types.TimeString) []domain.TimeSlot {
	if from.IsZero() || to.IsZero() {
		return slots
	}
	kept := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.StartTime.IsBefore(from) || slot.StartTime.IsAfter(to) {
			continue
		}
		kept = append(kept, slot)
	}
	return kept
}
