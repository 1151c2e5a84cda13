package formsession

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/usecase/create_appointment"
	"github.com/clarkyangjw/schedulease-web/internal/usecase/query_available_providers"
	"github.com/clarkyangjw/schedulease-web/internal/usecase/update_appointment"
)

// AvailabilityQuerier запрос доступных мастеров для пары (время, услуга)
type AvailabilityQuerier interface {
	Execute(ctx context.Context, req *query_available_providers.Request) (*query_available_providers.Response, error)
}

// AppointmentCreator создание новой записи при отправке формы
type AppointmentCreator interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
}

// AppointmentUpdater применение изменений существующей записи
type AppointmentUpdater interface {
	Execute(ctx context.Context, req *update_appointment.Request) (*update_appointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder бизнес-метрики формы записи
type MetricsRecorder interface {
	SetFormSessionsActive(n float64)
	StaleAvailabilityDropped()
}
