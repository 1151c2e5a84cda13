package create_appointment

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
)

// SchedCoreClient интерфейс клиента scheduling core
type SchedCoreClient interface {
	CreateAppointment(ctx context.Context, req *schedcore.CreateAppointmentRequest) (*schedcore.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
