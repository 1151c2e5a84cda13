package incidents

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
)

// IncidentRepository хранилище инцидентов replace-on-edit
type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) (*domain.Incident, error)
	List(ctx context.Context, includeAcknowledged bool) ([]*domain.Incident, error)
	Acknowledge(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder метрики инцидентов
type MetricsRecorder interface {
	PartialFailureRecorded()
}
