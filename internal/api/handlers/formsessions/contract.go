package formsessions

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/service/formsession"
)

// FormSessionService серверное состояние открытых форм записи
type FormSessionService interface {
	Open(ctx context.Context, seed *domain.Appointment) (*formsession.Snapshot, error)
	Apply(ctx context.Context, sessionID string, patch formsession.Patch) (*formsession.Snapshot, error)
	Submit(ctx context.Context, sessionID string) (*formsession.SubmitResult, error)
	Cancel(sessionID string) error
}

// AppointmentGetter чтение записи для заполнения формы редактирования
type AppointmentGetter interface {
	Get(ctx context.Context, id int64) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
