package resource

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/dbmetrics"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/psqlbuilder"
)

// Repository репозиторий для работы с ресурсами
// Правила доступности хранятся в колонке rule_set как jsonb
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ресурс
func (r *Repository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ruleSetJSON, err := json.Marshal(resource.RuleSet)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeRuleSet, err)
	}

	query, args, err := psqlbuilder.Insert("resources").
		Columns(
			"name",
			"capacity",
			"timezone",
			"rule_set",
		).
		Values(
			resource.Name,
			resource.Capacity,
			resource.Timezone,
			ruleSetJSON,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return resource, nil
}

// GetByID получает ресурс по ID вместе с его правилами доступности
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"capacity",
		"timezone",
		"rule_set",
		"created_at",
		"updated_at",
	).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var resource domain.Resource
	var capacity sql.NullInt64
	var ruleSetJSON []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&resource.Name,
		&capacity,
		&resource.Timezone,
		&ruleSetJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	if capacity.Valid {
		capValue := int(capacity.Int64)
		resource.Capacity = &capValue
	}

	if err := json.Unmarshal(ruleSetJSON, &resource.RuleSet); err != nil {
		return nil, fmt.Errorf("%w: GetByID - resource id=%d: %v", ErrDecodeRuleSet, id, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return &resource, nil
}

// UpdateRuleSet заменяет правила доступности ресурса целиком
// Частичных правок правил нет - набор правил заменяется атомарно
func (r *Repository) UpdateRuleSet(ctx context.Context, id int64, ruleSet domain.RuleSet) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ruleSetJSON, err := json.Marshal(ruleSet)
	if err != nil {
		return fmt.Errorf("%w: UpdateRuleSet: %v", ErrEncodeRuleSet, err)
	}

	query, args, err := psqlbuilder.Update("resources").
		Set("rule_set", ruleSetJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRuleSet - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRuleSet - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRuleSet - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}
