package services

import (
	"context"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/service/directory"
)

// DirectoryService операции справочника услуг
type DirectoryService interface {
	Services(ctx context.Context, filter directory.ServicesFilter) ([]domain.Service, error)
	CreateService(ctx context.Context, input directory.ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id int64, input directory.ServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
