package incident

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO replace_incidents`).
		WithArgs(int64(41), `{"clientId":3}`, "create failed after delete").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	inc, err := repo.Create(context.Background(), &domain.Incident{
		AppointmentID: 41,
		Payload:       `{"clientId":3}`,
		Reason:        "create failed after delete",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inc.ID)
	assert.Equal(t, now, inc.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_OpenOnly(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM replace_incidents WHERE acknowledged_at IS NULL`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "appointment_id", "payload", "reason", "created_at", "acknowledged_at"},
		).AddRow(int64(1), int64(41), `{}`, "create failed after delete", now, nil))

	incidents, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.True(t, incidents[0].IsOpen())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAcknowledge(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE replace_incidents SET acknowledged_at = NOW\(\)`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Acknowledge(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAcknowledge_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE replace_incidents`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT 1 FROM replace_incidents`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	err := repo.Acknowledge(context.Background(), 99)
	assert.ErrorIs(t, err, ErrIncidentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAcknowledge_Twice(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE replace_incidents`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT 1 FROM replace_incidents`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	err := repo.Acknowledge(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyAcknowledged)
	require.NoError(t, mock.ExpectationsWereMet())
}
