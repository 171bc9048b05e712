package assignment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/dbmetrics"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/psqlbuilder"
)

// assignmentColumns колонки таблицы assignments в порядке сканирования
var assignmentColumns = []string{
	"a.id",
	"a.booking_id",
	"a.resource_id",
	"a.start_at",
	"a.end_at",
	"a.participant_count",
	"a.role",
	"a.status",
	"a.voided_at",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с назначениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое назначение
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Запись назначения с проверкой вместимости обязана выполняться внутри
// SERIALIZABLE транзакции, иначе возможна гонка check-then-act
func (r *Repository) Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("assignments").
		Columns(
			"booking_id",
			"resource_id",
			"start_at",
			"end_at",
			"participant_count",
			"role",
			"status",
		).
		Values(
			assignment.BookingID,
			assignment.ResourceID,
			assignment.Start,
			assignment.End,
			assignment.ParticipantCount,
			assignment.Role,
			assignment.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&assignment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	assignment.CreatedAt = createdAt.Time
	assignment.UpdatedAt = updatedAt.Time

	return assignment, nil
}

// GetByID получает назначение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(assignmentColumns...).
		From("assignments a").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	assignment, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan assignment: %v", ErrScanRow, err)
	}

	return assignment, nil
}

// GetOverlapping получает активные назначения ресурса, реально пересекающие окно,
// у которых бронирование учитывается при подсчёте вместимости:
// confirmed всегда, draft - только при неистёкшем hold на момент now.
// Порядок детерминированный: start_at ASC, id ASC (для аудита и отображения)
func (r *Repository) GetOverlapping(ctx context.Context, resourceID int64, window domain.Window, now time.Time) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := overlappingQuery(resourceID, window, now).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetWithFilter получает назначения с гибкой фильтрацией
// Поддерживает фильтрацию по ресурсу, бронированию, периоду (по пересечению окон)
// и включению отменённых назначений
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := filterQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Void логически отменяет назначение
// Запись не удаляется - история назначений сохраняется для аудита.
// Возвращает ErrAlreadyVoided, если назначение уже отменено,
// и ErrAssignmentNotFound, если его не существует
func (r *Repository) Void(ctx context.Context, id int64, voidedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("assignments").
		Set("status", domain.AssignmentVoid).
		Set("voided_at", voidedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.AssignmentActive,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Void - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Void - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Void - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		// Либо назначения нет, либо оно уже void - различаем для вызывающего
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyVoided
	}

	return nil
}

// VoidByBookingID отменяет все активные назначения бронирования
// Используется при отмене бронирования целиком
func (r *Repository) VoidByBookingID(ctx context.Context, bookingID int64, voidedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("assignments").
		Set("status", domain.AssignmentVoid).
		Set("voided_at", voidedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"booking_id": bookingID,
			"status":     domain.AssignmentActive,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: VoidByBookingID - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: VoidByBookingID - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// overlappingQuery строит запрос активных назначений ресурса, реально
// пересекающих окно, чьи бронирования учитываются при подсчёте вместимости
func overlappingQuery(resourceID int64, window domain.Window, now time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select(assignmentColumns...).
		From("assignments a").
		Join("bookings b ON b.id = a.booking_id").
		Where(squirrel.And{
			squirrel.Eq{"a.resource_id": resourceID},
			squirrel.Eq{"a.status": domain.AssignmentActive},
			// Строгие неравенства: граничащие интервалы не пересекаются
			squirrel.Lt{"a.start_at": window.End},
			squirrel.Gt{"a.end_at": window.Start},
			squirrel.Or{
				squirrel.Eq{"b.status": domain.StatusConfirmed},
				squirrel.And{
					squirrel.Eq{"b.status": domain.StatusDraft},
					squirrel.Gt{"b.hold_expires_at": now},
				},
			},
		}).
		OrderBy("a.start_at ASC", "a.id ASC")
}

// filterQuery строит запрос назначений по опциональным условиям фильтра
func filterQuery(filter domain.AssignmentsFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(assignmentColumns...).
		From("assignments a").
		OrderBy("a.start_at ASC", "a.id ASC")

	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.resource_id": *filter.ResourceID})
	}
	if filter.BookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.booking_id": *filter.BookingID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"a.end_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"a.start_at": *filter.To})
	}
	if !filter.IncludeVoided {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": domain.AssignmentActive})
	}

	return selectBuilder
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAssignment сканирует одну строку назначения
func scanAssignment(row rowScanner) (*domain.Assignment, error) {
	var assignment domain.Assignment
	var voidedAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&assignment.ID,
		&assignment.BookingID,
		&assignment.ResourceID,
		&assignment.Start,
		&assignment.End,
		&assignment.ParticipantCount,
		&assignment.Role,
		&assignment.Status,
		&voidedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if voidedAt.Valid {
		assignment.VoidedAt = &voidedAt.Time
	}
	assignment.CreatedAt = createdAt.Time
	assignment.UpdatedAt = updatedAt.Time

	return &assignment, nil
}

// scanAssignments сканирует список назначений
func scanAssignments(rows *sql.Rows) ([]*domain.Assignment, error) {
	var assignments []*domain.Assignment

	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan assignment row: %v", ErrScanRow, err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate assignment rows: %v", ErrScanRow, err)
	}

	return assignments, nil
}
