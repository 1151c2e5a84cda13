package clients

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/service/directory"
)

// DirectoryService операции справочника клиентов
type DirectoryService interface {
	Clients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, input directory.ClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id int64, input directory.ClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
