package providers

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/service/directory"
)

// DirectoryService операции справочника мастеров
type DirectoryService interface {
	Providers(ctx context.Context) ([]domain.Provider, error)
	Provider(ctx context.Context, id int64) (*domain.Provider, error)
	CreateProvider(ctx context.Context, input directory.ProviderInput) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, id int64, input directory.ProviderInput) (*domain.Provider, error)
	DeleteProvider(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
