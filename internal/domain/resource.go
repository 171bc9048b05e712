package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidCapacity означает, что вместимость задана как 0 или отрицательная.
	// Безлимитная вместимость кодируется отсутствием значения (nil), а не нулём
	ErrInvalidCapacity = errors.New("domain: capacity must be nil (unbounded) or >= 1")

	// ErrInvalidTimezone означает, что таймзона ресурса не распознана
	ErrInvalidTimezone = errors.New("domain: unknown resource timezone")
)

// Resource represents a bookable unit with finite capacity (a guide, a room,
// a piece of equipment). Availability rules are owned by the resource and
// evaluated in its local timezone.
type Resource struct {
	ID       int64
	Name     string
	Capacity *int // nil = unbounded; zero is a configuration error
	Timezone string
	RuleSet  RuleSet

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUnbounded returns true if the resource has no capacity limit
func (r *Resource) IsUnbounded() bool {
	return r.Capacity == nil
}

// Location resolves the resource timezone
func (r *Resource) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, r.Timezone)
	}
	return loc, nil
}

// Validate checks the resource configuration.
// A misconfigured resource must never be silently bookable.
func (r *Resource) Validate() error {
	if r.Capacity != nil && *r.Capacity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, *r.Capacity)
	}
	if _, err := r.Location(); err != nil {
		return err
	}
	return r.RuleSet.Validate()
}
