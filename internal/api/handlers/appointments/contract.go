package appointments

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	createAppointment "github.com/clarkyangjw/schedulease-web/internal/usecase/create_appointment"
	queryAvailableProviders "github.com/clarkyangjw/schedulease-web/internal/usecase/query_available_providers"
	updateAppointment "github.com/clarkyangjw/schedulease-web/internal/usecase/update_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

type UpdateAppointmentUseCase interface {
	Execute(ctx context.Context, req *updateAppointment.Request) (*updateAppointment.Response, error)
}

type QueryAvailableProvidersUseCase interface {
	Execute(ctx context.Context, req *queryAvailableProviders.Request) (*queryAvailableProviders.Response, error)
}

// AppointmentsService чтение записей и прямые операции над ними
type AppointmentsService interface {
	Range(ctx context.Context, start, end int64) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string, reason *string) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
