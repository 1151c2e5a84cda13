package incident

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/pkg/psqlbuilder"
)

// Repository репозиторий инцидентов replace-on-edit.
// Единственная локальная таблица сервиса: всё остальное хранится
// в scheduling core.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инцидентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый инцидент
func (r *Repository) Create(ctx context.Context, incident *domain.Incident) (*domain.Incident, error) {
	query, args, err := psqlbuilder.Insert("replace_incidents").
		Columns(
			"appointment_id",
			"payload",
			"reason",
		).
		Values(
			incident.AppointmentID,
			incident.Payload,
			incident.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&incident.ID,
		&incident.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return incident, nil
}

// List возвращает инциденты, по умолчанию только неподтверждённые
func (r *Repository) List(ctx context.Context, includeAcknowledged bool) ([]*domain.Incident, error) {
	builder := psqlbuilder.Select(
		"id",
		"appointment_id",
		"payload",
		"reason",
		"created_at",
		"acknowledged_at",
	).
		From("replace_incidents").
		OrderBy("created_at DESC")

	if !includeAcknowledged {
		builder = builder.Where(squirrel.Eq{"acknowledged_at": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var incidents []*domain.Incident
	for rows.Next() {
		var inc domain.Incident
		var acknowledgedAt sql.NullTime

		err = rows.Scan(
			&inc.ID,
			&inc.AppointmentID,
			&inc.Payload,
			&inc.Reason,
			&inc.CreatedAt,
			&acknowledgedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if acknowledgedAt.Valid {
			inc.AcknowledgedAt = &acknowledgedAt.Time
		}
		incidents = append(incidents, &inc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return incidents, nil
}

// Acknowledge помечает инцидент подтверждённым.
// Повторное подтверждение - ошибка, чтобы оператор видел гонку.
func (r *Repository) Acknowledge(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("replace_incidents").
		Set("acknowledged_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"acknowledged_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Acknowledge - build update query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Acknowledge - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Acknowledge - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		// Либо инцидента нет, либо он уже подтверждён - различаем
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrIncidentNotFound
		}
		return ErrAlreadyAcknowledged
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("replace_incidents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists - execute select: %v", ErrExecQuery, err)
	}
	return true, nil
}
