package resolve_availability

import (
	"time"

	resolveAvailability "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/resolve_availability"
)

// IntervalResponse открытый интервал в ответе
type IntervalResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ResourceID int64              `json:"resourceId"`
	Timezone   string             `json:"timezone"`
	Intervals  []IntervalResponse `json:"intervals"`
}

// ToUseCaseRequest формирует запрос usecase из параметров запроса
// Диапазон дат [from, to] включителен по дням: to разворачивается
// в полночь следующего дня
func ToUseCaseRequest(resourceID int64, fromStr, toStr string) (*resolveAvailability.Request, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return nil, err
	}

	return &resolveAvailability.Request{
		ResourceID: resourceID,
		From:       from,
		To:         to.AddDate(0, 0, 1),
	}, nil
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *resolveAvailability.Response) *AvailabilityResponse {
	intervals := make([]IntervalResponse, len(resp.Intervals))
	for i, interval := range resp.Intervals {
		intervals[i] = IntervalResponse{
			Start: interval.Start,
			End:   interval.End,
		}
	}

	return &AvailabilityResponse{
		ResourceID: resp.ResourceID,
		Timezone:   resp.Timezone,
		Intervals:  intervals,
	}
}
