package directory

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
)

// SchedCoreClient операции справочников scheduling core
type SchedCoreClient interface {
	ListClients(ctx context.Context) ([]schedcore.Client, error)
	CreateClient(ctx context.Context, req *schedcore.SaveClientRequest) (*schedcore.Client, error)
	UpdateClient(ctx context.Context, id int64, req *schedcore.SaveClientRequest) (*schedcore.Client, error)
	DeleteClient(ctx context.Context, id int64) error

	ListProviders(ctx context.Context) ([]schedcore.Provider, error)
	GetProvider(ctx context.Context, id int64) (*schedcore.Provider, error)
	CreateProvider(ctx context.Context, req *schedcore.SaveProviderRequest) (*schedcore.Provider, error)
	UpdateProvider(ctx context.Context, id int64, req *schedcore.SaveProviderRequest) (*schedcore.Provider, error)
	DeleteProvider(ctx context.Context, id int64) error

	ListServices(ctx context.Context, activeOnly *bool, category *string) ([]schedcore.Service, error)
	CreateService(ctx context.Context, req *schedcore.SaveServiceRequest) (*schedcore.Service, error)
	UpdateService(ctx context.Context, id int64, req *schedcore.SaveServiceRequest) (*schedcore.Service, error)
	DeleteService(ctx context.Context, id int64) error
}

// LookupCache кеш списков справочников. Любая ошибка кеша не фатальна:
// чтение уходит в scheduling core, запись пропускается.
type LookupCache interface {
	Get(ctx context.Context, key string, out interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeleteServices(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
