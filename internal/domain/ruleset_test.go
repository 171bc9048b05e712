package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/ptr"
)

func TestRuleSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ruleSet RuleSet
		wantErr bool
	}{
		{
			name:    "default open",
			ruleSet: RuleSet{DefaultState: DayStateOpen},
		},
		{
			name:    "default closed",
			ruleSet: RuleSet{DefaultState: DayStateClosed},
		},
		{
			name:    "unknown default state",
			ruleSet: RuleSet{DefaultState: "maybe"},
			wantErr: true,
		},
		{
			name:    "empty default state",
			ruleSet: RuleSet{},
			wantErr: true,
		},
		{
			name: "valid exclusions",
			ruleSet: RuleSet{
				DefaultState:     DayStateOpen,
				ExcludedWeekdays: []int{0, 6},
				ExcludedMonths:   []int{1, 12},
			},
		},
		{
			name: "weekday out of range",
			ruleSet: RuleSet{
				DefaultState:     DayStateOpen,
				ExcludedWeekdays: []int{7},
			},
			wantErr: true,
		},
		{
			name: "negative weekday",
			ruleSet: RuleSet{
				DefaultState:     DayStateOpen,
				ExcludedWeekdays: []int{-1},
			},
			wantErr: true,
		},
		{
			name: "month out of range",
			ruleSet: RuleSet{
				DefaultState:   DayStateOpen,
				ExcludedMonths: []int{13},
			},
			wantErr: true,
		},
		{
			name: "month zero",
			ruleSet: RuleSet{
				DefaultState:   DayStateOpen,
				ExcludedMonths: []int{0},
			},
			wantErr: true,
		},
		{
			name: "valid time range rule",
			ruleSet: RuleSet{
				DefaultState: DayStateOpen,
				ExcludedTimeRanges: []TimeRangeRule{
					{Weekday: ptr.Ptr(1), TimeRange: TimeRange{StartTime: "12:00", EndTime: "13:00"}},
				},
			},
		},
		{
			name: "time range rule weekday out of range",
			ruleSet: RuleSet{
				DefaultState: DayStateOpen,
				ExcludedTimeRanges: []TimeRangeRule{
					{Weekday: ptr.Ptr(7), TimeRange: TimeRange{StartTime: "12:00", EndTime: "13:00"}},
				},
			},
			wantErr: true,
		},
		{
			name: "inverted time range",
			ruleSet: RuleSet{
				DefaultState: DayStateOpen,
				ExcludedTimeRanges: []TimeRangeRule{
					{TimeRange: TimeRange{StartTime: "13:00", EndTime: "12:00"}},
				},
			},
			wantErr: true,
		},
		{
			name: "end of day boundary in range",
			ruleSet: RuleSet{
				DefaultState: DayStateOpen,
				ExcludedTimeRanges: []TimeRangeRule{
					{TimeRange: TimeRange{StartTime: "22:00", EndTime: "24:00"}},
				},
			},
		},
		{
			name: "valid override",
			ruleSet: RuleSet{
				DefaultState: DayStateClosed,
				Overrides: []DateOverride{
					{Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), State: DayStateOpen},
				},
			},
		},
		{
			name: "override without date",
			ruleSet: RuleSet{
				DefaultState: DayStateOpen,
				Overrides:    []DateOverride{{State: DayStateClosed}},
			},
			wantErr: true,
		},
		{
			name: "override with unknown state",
			ruleSet: RuleSet{
				DefaultState: DayStateOpen,
				Overrides: []DateOverride{
					{Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), State: "half-open"},
				},
			},
			wantErr: true,
		},
		{
			name: "override with invalid time range",
			ruleSet: RuleSet{
				DefaultState: DayStateOpen,
				Overrides: []DateOverride{
					{
						Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
						State:     DayStateClosed,
						TimeRange: &TimeRange{StartTime: "10:00", EndTime: "10:00"},
					},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ruleSet.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRuleSet)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRuleSet_IsWeekdayExcluded(t *testing.T) {
	rs := RuleSet{DefaultState: DayStateOpen, ExcludedWeekdays: []int{0, 6}}

	assert.True(t, rs.IsWeekdayExcluded(time.Sunday))
	assert.True(t, rs.IsWeekdayExcluded(time.Saturday))
	assert.False(t, rs.IsWeekdayExcluded(time.Monday))
}

func TestRuleSet_IsMonthExcluded(t *testing.T) {
	rs := RuleSet{DefaultState: DayStateOpen, ExcludedMonths: []int{1, 2}}

	assert.True(t, rs.IsMonthExcluded(time.January))
	assert.True(t, rs.IsMonthExcluded(time.February))
	assert.False(t, rs.IsMonthExcluded(time.June))
}

func TestRuleSet_OverridesForDate(t *testing.T) {
	rs := RuleSet{
		DefaultState: DayStateOpen,
		Overrides: []DateOverride{
			{Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), State: DayStateClosed},
			{Date: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), State: DayStateClosed},
			{
				Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
				State:     DayStateOpen,
				TimeRange: &TimeRange{StartTime: "09:00", EndTime: "12:00"},
			},
		},
	}

	got := rs.OverridesForDate(2024, time.June, 3)
	assert.Len(t, got, 2)
	// Порядок объявления сохраняется
	assert.Nil(t, got[0].TimeRange)
	assert.NotNil(t, got[1].TimeRange)

	assert.Empty(t, rs.OverridesForDate(2024, time.June, 5))
}
