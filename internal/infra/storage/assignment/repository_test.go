package assignment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/ptr"
)

func TestOverlappingQuery_DeterministicOrder(t *testing.T) {
	window := domain.NewWindow(
		time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
	)

	query, args, err := overlappingQuery(1, window, time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)).ToSql()

	require.NoError(t, err)
	// Детерминированный порядок выдачи леджера
	assert.Contains(t, query, "ORDER BY a.start_at ASC, a.id ASC")
	// Строгие неравенства пересечения: граничащие интервалы не конфликтуют
	assert.Contains(t, query, "a.start_at <")
	assert.Contains(t, query, "a.end_at >")
	assert.NotContains(t, query, "a.start_at <=")
	assert.NotContains(t, query, "a.end_at >=")
	assert.Contains(t, args, window.Start)
	assert.Contains(t, args, window.End)
}

func TestFilterQuery_DeterministicOrder(t *testing.T) {
	query, _, err := filterQuery(domain.AssignmentsFilter{}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY a.start_at ASC, a.id ASC")
	// Без includeVoided выбираются только активные назначения
	assert.Contains(t, query, "a.status =")
}

func TestFilterQuery_AppliesOptionalConditions(t *testing.T) {
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)

	query, args, err := filterQuery(domain.AssignmentsFilter{
		ResourceID:    ptr.Ptr(int64(1)),
		BookingID:     ptr.Ptr(int64(7)),
		From:          &from,
		To:            &to,
		IncludeVoided: true,
	}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "a.resource_id =")
	assert.Contains(t, query, "a.booking_id =")
	assert.Contains(t, query, "a.end_at >")
	assert.Contains(t, query, "a.start_at <")
	// includeVoided снимает фильтр по статусу
	assert.NotContains(t, query, "a.status =")
	assert.Len(t, args, 4)
}
