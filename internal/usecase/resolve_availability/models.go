package resolve_availability

import (
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

// Request входные данные запроса доступности
type Request struct {
	ResourceID int64
	From       time.Time
	To         time.Time
}

// Interval открытый интервал ресурса
type Interval struct {
	Start time.Time
	End   time.Time
}

// Response открытые интервалы ресурса в запрошенном диапазоне
type Response struct {
	ResourceID int64
	Timezone   string
	Intervals  []Interval
}

// fromWindows конвертирует окна резолвера в интервалы ответа
func fromWindows(windows []domain.Window) []Interval {
	intervals := make([]Interval, len(windows))
	for i, w := range windows {
		intervals[i] = Interval{Start: w.Start, End: w.End}
	}
	return intervals
}
