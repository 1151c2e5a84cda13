package appointments

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
)

// SchedCoreClient операции с записями scheduling core
type SchedCoreClient interface {
	ListAppointments(ctx context.Context, startSeconds, endSeconds int64) ([]schedcore.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (*schedcore.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, req *schedcore.UpdateStatusRequest) (*schedcore.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
