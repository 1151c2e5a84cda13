package query_available_providers

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
)

// SchedCoreClient интерфейс клиента scheduling core
type SchedCoreClient interface {
	AvailableProviders(ctx context.Context, startSeconds, serviceID int64) ([]schedcore.Provider, error)
	GetProvider(ctx context.Context, id int64) (*schedcore.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
