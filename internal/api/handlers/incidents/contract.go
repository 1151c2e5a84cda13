package incidents

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
)

// IncidentsService учёт инцидентов замены записи
type IncidentsService interface {
	List(ctx context.Context, includeAcknowledged bool) ([]*domain.Incident, error)
	Acknowledge(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
