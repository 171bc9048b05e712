package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/types"
)

// ErrInvalidRuleSet означает ошибку конфигурации правил доступности.
// Нераспознанные номера дней недели/месяцев не обрезаются молча - это отказ
var ErrInvalidRuleSet = errors.New("domain: invalid rule set")

// DayState declarative state of a day (or a sub-interval of a day)
type DayState string

const (
	DayStateOpen   DayState = "open"
	DayStateClosed DayState = "closed"
)

// TimeRange sub-day interval [StartTime, EndTime) in the resource's local time
type TimeRange struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Validate checks the format and ordering of the range boundaries
func (tr *TimeRange) Validate() error {
	if err := tr.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	if err := tr.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	if !tr.StartTime.IsBefore(tr.EndTime) {
		return fmt.Errorf("%w: time range start %s must be before end %s",
			ErrInvalidRuleSet, tr.StartTime, tr.EndTime)
	}
	return nil
}

// TimeRangeRule recurring sub-day blackout window.
// Weekday nil means the rule applies to every day of the week.
type TimeRangeRule struct {
	Weekday   *int      `json:"weekday,omitempty"` // 0 = Sunday .. 6 = Saturday
	TimeRange TimeRange `json:"timeRange"`
}

// DateOverride date-exact rule with the highest precedence.
// Without a TimeRange the override replaces the whole day's state; with one it
// replaces only that sub-interval, the rest of the day keeps the lower rules.
type DateOverride struct {
	Date      time.Time  `json:"date"` // date component only, local to the resource
	State     DayState   `json:"state"`
	TimeRange *TimeRange `json:"timeRange,omitempty"`
}

// RuleSet declarative availability configuration of a resource.
// Precedence for a single date: overrides > weekday/month exclusions > default.
type RuleSet struct {
	DefaultState       DayState        `json:"defaultState"`
	ExcludedWeekdays   []int           `json:"excludedWeekdays,omitempty"` // 0 = Sunday .. 6 = Saturday
	ExcludedMonths     []int           `json:"excludedMonths,omitempty"`   // 1 = January .. 12 = December
	ExcludedTimeRanges []TimeRangeRule `json:"excludedTimeRanges,omitempty"`
	Overrides          []DateOverride  `json:"overrides,omitempty"`
}

// Validate checks the whole rule set configuration
func (rs *RuleSet) Validate() error {
	if rs.DefaultState != DayStateOpen && rs.DefaultState != DayStateClosed {
		return fmt.Errorf("%w: unknown default state %q", ErrInvalidRuleSet, rs.DefaultState)
	}

	for _, wd := range rs.ExcludedWeekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("%w: weekday %d out of range 0-6", ErrInvalidRuleSet, wd)
		}
	}

	for _, m := range rs.ExcludedMonths {
		if m < 1 || m > 12 {
			return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidRuleSet, m)
		}
	}

	for i, rule := range rs.ExcludedTimeRanges {
		if rule.Weekday != nil && (*rule.Weekday < 0 || *rule.Weekday > 6) {
			return fmt.Errorf("%w: excluded time range %d: weekday %d out of range 0-6",
				ErrInvalidRuleSet, i, *rule.Weekday)
		}
		if err := rule.TimeRange.Validate(); err != nil {
			return fmt.Errorf("excluded time range %d: %w", i, err)
		}
	}

	for i, ov := range rs.Overrides {
		if ov.Date.IsZero() {
			return fmt.Errorf("%w: override %d: date is required", ErrInvalidRuleSet, i)
		}
		if ov.State != DayStateOpen && ov.State != DayStateClosed {
			return fmt.Errorf("%w: override %d: unknown state %q", ErrInvalidRuleSet, i, ov.State)
		}
		if ov.TimeRange != nil {
			if err := ov.TimeRange.Validate(); err != nil {
				return fmt.Errorf("override %d: %w", i, err)
			}
		}
	}

	return nil
}

// IsWeekdayExcluded checks whether the weekday is forced closed
func (rs *RuleSet) IsWeekdayExcluded(weekday time.Weekday) bool {
	for _, wd := range rs.ExcludedWeekdays {
		if wd == int(weekday) {
			return true
		}
	}
	return false
}

// IsMonthExcluded checks whether the month is forced closed
func (rs *RuleSet) IsMonthExcluded(month time.Month) bool {
	for _, m := range rs.ExcludedMonths {
		if m == int(month) {
			return true
		}
	}
	return false
}

// OverridesForDate returns the overrides matching the exact calendar date,
// in declaration order
func (rs *RuleSet) OverridesForDate(year int, month time.Month, day int) []DateOverride {
	var result []DateOverride
	for _, ov := range rs.Overrides {
		y, m, d := ov.Date.Date()
		if y == year && m == month && d == day {
			result = append(result, ov)
		}
	}
	return result
}
