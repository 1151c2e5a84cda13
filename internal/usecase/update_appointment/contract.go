package update_appointment

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
)

// SchedCoreClient интерфейс клиента scheduling core
type SchedCoreClient interface {
	GetAppointment(ctx context.Context, id int64) (*schedcore.Appointment, error)
	CreateAppointment(ctx context.Context, req *schedcore.CreateAppointmentRequest) (*schedcore.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, req *schedcore.UpdateStatusRequest) (*schedcore.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

// IncidentRecorder фиксирует потерю записи при замене
type IncidentRecorder interface {
	RecordReplaceFailure(ctx context.Context, appointmentID int64, payload string, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
