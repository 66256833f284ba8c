package availability

import (
	"fmt"

	"github.com/simplyseat/reservation-service/pkg/types"
)

// interval пара минутных отметок с уже применённой поправкой на переход через полночь.
// Для интервала, заканчивающегося на следующий день, end > 1440.
type interval struct {
	start int
	end   int
}

// newInterval переводит пару HH:MM в минуты от полуночи.
// Если конец меньше либо равен началу, интервал считается ночным и конец
// сдвигается на сутки вперёд.
func newInterval(start, end types.TimeString) (interval, error) {
	s, err := start.Minutes()
	if err != nil {
		return interval{}, fmt.Errorf("%w: start %q: %v", ErrInvalidInput, start, err)
	}
	e, err := end.Minutes()
	if err != nil {
		return interval{}, fmt.Errorf("%w: end %q: %v", ErrInvalidInput, end, err)
	}
	if e <= s {
		e += types.MinutesPerDay
	}
	return interval{start: s, end: e}, nil
}

// overlaps проверяет пересечение полуоткрытых интервалов [start, end).
// Интервалы, касающиеся концами, не пересекаются.
func (i interval) overlaps(other interval) bool {
	return i.start < other.end && other.start < i.end
}

// contains проверяет, что other целиком лежит внутри интервала.
func (i interval) contains(other interval) bool {
	return i.start <= other.start && other.end <= i.end
}

// duration длительность интервала в минутах.
func (i interval) duration() int {
	return i.end - i.start
}
