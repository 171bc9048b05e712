package domain

// Default configuration values
const (
	DefaultDraftHoldMinutes = 30
	DefaultLockWaitSeconds  = 5
)

// Business validation constants
const (
	MinParticipantCount         = 1
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CapacityCountingStatuses статусы бронирований, чьи назначения могут
// учитываться при подсчёте занятой вместимости.
// Draft учитывается только при неистёкшем hold - это решает запрос леджера
var CapacityCountingStatuses = []BookingStatus{
	StatusDraft,
	StatusConfirmed,
}

// ValidRoles допустимые роли назначения
var ValidRoles = []AssignmentRole{
	RolePrimary,
	RoleSecondary,
}
