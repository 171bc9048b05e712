package domain

import "time"

// AssignmentRole role of a resource within a multi-resource booking
type AssignmentRole string

const (
	RolePrimary   AssignmentRole = "primary"
	RoleSecondary AssignmentRole = "secondary"
)

// AssignmentStatus lifecycle status of an assignment
type AssignmentStatus string

const (
	// AssignmentActive действующее назначение, учитывается при подсчёте вместимости
	AssignmentActive AssignmentStatus = "active"

	// AssignmentVoid логически отменённое назначение.
	// Запись не удаляется и не изменяется по времени/ресурсу - перенос
	// моделируется как void + новое назначение, история сохраняется
	AssignmentVoid AssignmentStatus = "void"
)

// Assignment binds a booking to a resource for a concrete time window and
// participant count. Created only through the allocate operation, voided only
// through cancel; never mutated in place.
type Assignment struct {
	ID               int64
	BookingID        int64
	ResourceID       int64
	Start            time.Time
	End              time.Time
	ParticipantCount int
	Role             AssignmentRole
	Status           AssignmentStatus

	VoidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the assignment's time window
func (a *Assignment) Window() Window {
	return Window{Start: a.Start, End: a.End}
}

// IsVoid returns true if the assignment has been cancelled
func (a *Assignment) IsVoid() bool {
	return a.Status == AssignmentVoid
}

// AssignmentsFilter фильтр для выборки назначений
// Все поля опциональны и комбинируются через AND
type AssignmentsFilter struct {
	ResourceID    *int64
	BookingID     *int64
	From          *time.Time // начало периода (включительно, по пересечению окон)
	To            *time.Time // конец периода (эксклюзивно)
	IncludeVoided bool       // включать ли отменённые назначения
}
