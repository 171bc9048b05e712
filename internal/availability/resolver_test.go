package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/ptr"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/types"
)

func day(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func at(y int, m time.Month, d, hour, minute int, loc *time.Location) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, loc)
}

func timeRange(start, end string) domain.TimeRange {
	return domain.TimeRange{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestResolve_DefaultOpen_WholeDay(t *testing.T) {
	rs := domain.RuleSet{DefaultState: domain.DayStateOpen}
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 4, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, query.Start, windows[0].Start)
	assert.Equal(t, query.End, windows[0].End)
}

func TestResolve_DefaultClosed_NoWindows(t *testing.T) {
	rs := domain.RuleSet{DefaultState: domain.DayStateClosed}
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 10, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestResolve_MergesAdjacentDaysAcrossMidnight(t *testing.T) {
	rs := domain.RuleSet{DefaultState: domain.DayStateOpen}
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 6, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	// Три открытых дня подряд сливаются в один непрерывный интервал
	require.Len(t, windows, 1)
	assert.Equal(t, query.Start, windows[0].Start)
	assert.Equal(t, query.End, windows[0].End)
}

func TestResolve_ExcludedWeekday_SplitsWeek(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState:     domain.DayStateOpen,
		ExcludedWeekdays: []int{0}, // воскресенье
	}
	// Понедельник 3 июня - понедельник 10 июня, воскресенье 9 июня закрыто
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 11, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, day(2024, time.June, 3, time.UTC), windows[0].Start)
	assert.Equal(t, day(2024, time.June, 9, time.UTC), windows[0].End)
	assert.Equal(t, day(2024, time.June, 10, time.UTC), windows[1].Start)
	assert.Equal(t, day(2024, time.June, 11, time.UTC), windows[1].End)
}

func TestResolve_ExcludedMonth_ClosesWholeMonth(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState:   domain.DayStateOpen,
		ExcludedMonths: []int{6}, // июнь
	}
	query := domain.Window{
		Start: day(2024, time.May, 30, time.UTC),
		End:   day(2024, time.June, 3, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, day(2024, time.May, 30, time.UTC), windows[0].Start)
	assert.Equal(t, day(2024, time.June, 1, time.UTC), windows[0].End)
}

func TestResolve_ExcludedTimeRange_SplitsDay(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState: domain.DayStateOpen,
		ExcludedTimeRanges: []domain.TimeRangeRule{
			{TimeRange: timeRange("12:00", "13:00")},
		},
	}
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 4, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, at(2024, time.June, 3, 12, 0, time.UTC), windows[0].End)
	assert.Equal(t, at(2024, time.June, 3, 13, 0, time.UTC), windows[1].Start)
}

func TestResolve_ExcludedTimeRange_WeekdayScoped(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState: domain.DayStateOpen,
		ExcludedTimeRanges: []domain.TimeRangeRule{
			// Только по понедельникам
			{Weekday: ptr.Ptr(1), TimeRange: timeRange("08:00", "10:00")},
		},
	}
	// Понедельник 3 июня и вторник 4 июня
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 5, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	// Понедельник разрезан, вторник сливается с хвостом понедельника
	assert.Equal(t, at(2024, time.June, 3, 8, 0, time.UTC), windows[0].End)
	assert.Equal(t, at(2024, time.June, 3, 10, 0, time.UTC), windows[1].Start)
	assert.Equal(t, day(2024, time.June, 5, time.UTC), windows[1].End)
}

func TestResolve_OverrideOpensExcludedWeekday(t *testing.T) {
	// Понедельники закрыты, но точная дата 3 июня открыта с 09:00 до 12:00
	rs := domain.RuleSet{
		DefaultState:     domain.DayStateOpen,
		ExcludedWeekdays: []int{1},
		Overrides: []domain.DateOverride{
			{
				Date:      day(2024, time.June, 3, time.UTC),
				State:     domain.DayStateOpen,
				TimeRange: ptr.Ptr(timeRange("09:00", "12:00")),
			},
		},
	}
	query := domain.Window{
		Start: day(2024, time.June, 2, time.UTC),
		End:   day(2024, time.June, 4, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	// Воскресенье открыто целиком
	assert.Equal(t, day(2024, time.June, 2, time.UTC), windows[0].Start)
	assert.Equal(t, day(2024, time.June, 3, time.UTC), windows[0].End)
	// Понедельник открыт только в окне override
	assert.Equal(t, at(2024, time.June, 3, 9, 0, time.UTC), windows[1].Start)
	assert.Equal(t, at(2024, time.June, 3, 12, 0, time.UTC), windows[1].End)
}

func TestResolve_OverrideClosesWholeDay(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState: domain.DayStateOpen,
		Overrides: []domain.DateOverride{
			{Date: day(2024, time.June, 3, time.UTC), State: domain.DayStateClosed},
		},
	}
	query := domain.Window{
		Start: day(2024, time.June, 2, time.UTC),
		End:   day(2024, time.June, 5, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, day(2024, time.June, 3, time.UTC), windows[0].End)
	assert.Equal(t, day(2024, time.June, 4, time.UTC), windows[1].Start)
}

func TestResolve_OverrideClosesSubRange(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState: domain.DayStateOpen,
		Overrides: []domain.DateOverride{
			{
				Date:      day(2024, time.June, 3, time.UTC),
				State:     domain.DayStateClosed,
				TimeRange: ptr.Ptr(timeRange("14:00", "16:00")),
			},
		},
	}
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 4, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, at(2024, time.June, 3, 14, 0, time.UTC), windows[0].End)
	assert.Equal(t, at(2024, time.June, 3, 16, 0, time.UTC), windows[1].Start)
}

func TestResolve_ClipsToQueryWindow(t *testing.T) {
	rs := domain.RuleSet{DefaultState: domain.DayStateOpen}
	query := domain.Window{
		Start: at(2024, time.June, 3, 10, 30, time.UTC),
		End:   at(2024, time.June, 3, 15, 0, time.UTC),
	}

	windows, err := Resolve(rs, time.UTC, query)

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, query.Start, windows[0].Start)
	assert.Equal(t, query.End, windows[0].End)
}

func TestResolve_LocalTimezone(t *testing.T) {
	// Часовой пояс ресурса UTC+3: его календарный день начинается
	// в 21:00 предыдущего дня по UTC
	loc := time.FixedZone("UTC+3", 3*3600)
	rs := domain.RuleSet{
		DefaultState: domain.DayStateOpen,
		ExcludedTimeRanges: []domain.TimeRangeRule{
			{TimeRange: timeRange("00:00", "09:00")},
		},
	}
	query := domain.Window{
		Start: day(2024, time.June, 3, loc),
		End:   day(2024, time.June, 4, loc),
	}

	windows, err := Resolve(rs, loc, query)

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, at(2024, time.June, 3, 9, 0, loc), windows[0].Start)
	// 09:00 локальных = 06:00 UTC
	assert.Equal(t, at(2024, time.June, 3, 6, 0, time.UTC).UTC(), windows[0].Start.UTC())
}

func TestResolve_InvalidRuleSet(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState:     domain.DayStateOpen,
		ExcludedWeekdays: []int{7},
	}
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 4, time.UTC),
	}

	_, err := Resolve(rs, time.UTC, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRuleSet)
}

func TestResolve_InvalidTimeRange(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState: domain.DayStateOpen,
		ExcludedTimeRanges: []domain.TimeRangeRule{
			{TimeRange: timeRange("13:00", "12:00")},
		},
	}
	query := domain.Window{
		Start: day(2024, time.June, 3, time.UTC),
		End:   day(2024, time.June, 4, time.UTC),
	}

	_, err := Resolve(rs, time.UTC, query)

	assert.ErrorIs(t, err, domain.ErrInvalidRuleSet)
}

func TestIsWindowOpen(t *testing.T) {
	rs := domain.RuleSet{
		DefaultState: domain.DayStateOpen,
		ExcludedTimeRanges: []domain.TimeRangeRule{
			{TimeRange: timeRange("12:00", "13:00")},
		},
	}

	tests := []struct {
		name   string
		window domain.Window
		open   bool
	}{
		{
			name: "целиком в открытом интервале",
			window: domain.Window{
				Start: at(2024, time.June, 3, 9, 0, time.UTC),
				End:   at(2024, time.June, 3, 11, 0, time.UTC),
			},
			open: true,
		},
		{
			name: "упирается в начало blackout",
			window: domain.Window{
				Start: at(2024, time.June, 3, 10, 0, time.UTC),
				End:   at(2024, time.June, 3, 12, 0, time.UTC),
			},
			open: true,
		},
		{
			name: "пересекает blackout",
			window: domain.Window{
				Start: at(2024, time.June, 3, 11, 0, time.UTC),
				End:   at(2024, time.June, 3, 14, 0, time.UTC),
			},
			open: false,
		},
		{
			name: "внутри blackout",
			window: domain.Window{
				Start: at(2024, time.June, 3, 12, 15, time.UTC),
				End:   at(2024, time.June, 3, 12, 45, time.UTC),
			},
			open: false,
		},
		{
			name: "через полночь двух открытых дней",
			window: domain.Window{
				Start: at(2024, time.June, 3, 23, 0, time.UTC),
				End:   at(2024, time.June, 4, 1, 0, time.UTC),
			},
			open: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, err := IsWindowOpen(rs, time.UTC, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.open, open)
		})
	}
}
