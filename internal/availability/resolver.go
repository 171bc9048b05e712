// Package availability evaluates a resource's declarative rule set into
// concrete open intervals. Precedence for a single date: date-exact overrides
// beat weekday/month exclusions, which beat the default state.
package availability

import (
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/types"
)

// minuteSpan полуинтервал [start, end) в минутах от полуночи
type minuteSpan struct {
	start int
	end   int
}

// Resolve вычисляет открытые интервалы ресурса в пределах queryWindow.
// Правила применяются по календарным дням в таймзоне loc, затем смежные
// интервалы (включая стык полуночи соседних дней) сливаются.
// Ошибки конфигурации правил возвращаются, а не обрезаются молча
func Resolve(rs domain.RuleSet, loc *time.Location, queryWindow domain.Window) ([]domain.Window, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	from := queryWindow.Start.In(loc)
	to := queryWindow.End.In(loc)

	var result []domain.Window

	// Идём по календарным дням, которые затрагивает запрошенное окно
	for day := startOfDay(from); day.Before(to); day = day.AddDate(0, 0, 1) {
		spans, err := openSpansForDay(rs, day)
		if err != nil {
			return nil, err
		}

		for _, span := range spans {
			window := domain.Window{
				Start: minuteToTime(day, span.start, loc),
				End:   minuteToTime(day, span.end, loc),
			}

			// Обрезаем до границ запрошенного окна
			if window.Start.Before(queryWindow.Start) {
				window.Start = queryWindow.Start
			}
			if window.End.After(queryWindow.End) {
				window.End = queryWindow.End
			}
			if !window.IsValid() {
				continue
			}

			// Сливаем со смежным предыдущим интервалом (в том числе через полночь)
			if n := len(result); n > 0 && result[n-1].End.Equal(window.Start) {
				result[n-1].End = window.End
				continue
			}
			result = append(result, window)
		}
	}

	return result, nil
}

// IsWindowOpen проверяет, что окно целиком лежит в объединении открытых
// интервалов. Частичное попадание (окно начинается в открытом интервале и
// заканчивается в закрытом) считается недоступностью
func IsWindowOpen(rs domain.RuleSet, loc *time.Location, window domain.Window) (bool, error) {
	open, err := Resolve(rs, loc, window)
	if err != nil {
		return false, err
	}

	// После слияния смежных интервалов окно открыто тогда и только тогда,
	// когда один интервал содержит его целиком
	for _, interval := range open {
		if interval.Contains(window) {
			return true, nil
		}
	}
	return false, nil
}

// openSpansForDay вычисляет открытые минутные интервалы одного календарного дня.
//
// Порядок применения правил:
//  1. базовое состояние дня (defaultState)
//  2. исключённые дни недели и месяцы закрывают день целиком
//  3. исключённые диапазоны времени вычитаются из открытой части
//     (закрытый день они не открывают)
//  4. overrides точной даты: без диапазона - заменяют день целиком,
//     с диапазоном - заменяют состояние только этого подынтервала
func openSpansForDay(rs domain.RuleSet, day time.Time) ([]minuteSpan, error) {
	year, month, date := day.Date()
	weekday := day.Weekday()

	// Шаги 1-2: базовое состояние с учётом исключённых дней недели и месяцев
	var spans []minuteSpan
	if rs.DefaultState == domain.DayStateOpen &&
		!rs.IsWeekdayExcluded(weekday) &&
		!rs.IsMonthExcluded(month) {
		spans = []minuteSpan{{start: 0, end: types.MinutesPerDay}}
	}

	// Шаг 3: вычитаем повторяющиеся blackout-окна
	for _, rule := range rs.ExcludedTimeRanges {
		if rule.Weekday != nil && *rule.Weekday != int(weekday) {
			continue
		}
		span, err := toMinuteSpan(rule.TimeRange)
		if err != nil {
			return nil, err
		}
		spans = subtract(spans, span)
	}

	// Шаг 4: overrides точной даты, высший приоритет
	for _, ov := range rs.OverridesForDate(year, month, date) {
		if ov.TimeRange == nil {
			// Замена состояния всего дня
			if ov.State == domain.DayStateOpen {
				spans = []minuteSpan{{start: 0, end: types.MinutesPerDay}}
			} else {
				spans = nil
			}
			continue
		}

		span, err := toMinuteSpan(*ov.TimeRange)
		if err != nil {
			return nil, err
		}
		if ov.State == domain.DayStateOpen {
			spans = insert(spans, span)
		} else {
			spans = subtract(spans, span)
		}
	}

	return normalize(spans), nil
}

// toMinuteSpan конвертирует TimeRange в минутный интервал
func toMinuteSpan(tr domain.TimeRange) (minuteSpan, error) {
	start, err := tr.StartTime.Minutes()
	if err != nil {
		return minuteSpan{}, err
	}
	end, err := tr.EndTime.Minutes()
	if err != nil {
		return minuteSpan{}, err
	}
	return minuteSpan{start: start, end: end}, nil
}

// subtract вычитает cut из каждого интервала
func subtract(spans []minuteSpan, cut minuteSpan) []minuteSpan {
	var result []minuteSpan
	for _, s := range spans {
		// Нет пересечения - интервал остаётся как есть
		if cut.end <= s.start || cut.start >= s.end {
			result = append(result, s)
			continue
		}
		// Левый остаток
		if cut.start > s.start {
			result = append(result, minuteSpan{start: s.start, end: cut.start})
		}
		// Правый остаток
		if cut.end < s.end {
			result = append(result, minuteSpan{start: cut.end, end: s.end})
		}
	}
	return result
}

// insert добавляет интервал, предварительно вырезав пересечения,
// чтобы не появлялось перекрывающихся интервалов
func insert(spans []minuteSpan, add minuteSpan) []minuteSpan {
	result := subtract(spans, add)
	result = append(result, add)
	return normalize(result)
}

// normalize сортирует интервалы и сливает смежные/пересекающиеся
func normalize(spans []minuteSpan) []minuteSpan {
	if len(spans) == 0 {
		return nil
	}

	// Сортировка вставками - интервалов в пределах дня единицы
	sorted := make([]minuteSpan, 0, len(spans))
	for _, s := range spans {
		pos := len(sorted)
		for i, existing := range sorted {
			if s.start < existing.start {
				pos = i
				break
			}
		}
		sorted = append(sorted, minuteSpan{})
		copy(sorted[pos+1:], sorted[pos:])
		sorted[pos] = s
	}

	merged := []minuteSpan{sorted[0]}
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// startOfDay возвращает полночь того же календарного дня
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// minuteToTime конвертирует минуту дня в момент времени по локальным часам
func minuteToTime(day time.Time, minute int, loc *time.Location) time.Time {
	year, month, date := day.Date()
	if minute == types.MinutesPerDay {
		return time.Date(year, month, date+1, 0, 0, 0, 0, loc)
	}
	return time.Date(year, month, date, minute/60, minute%60, 0, 0, loc)
}
