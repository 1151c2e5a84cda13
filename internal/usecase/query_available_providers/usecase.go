package query_available_providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	schedClient "github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
	"github.com/clarkyangjw/schedulease-web/pkg/timeunit"
)

// UseCase use case запроса мастеров, свободных для пары (время, услуга)
type UseCase struct {
	schedCore SchedCoreClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedCore SchedCoreClient, logger Logger) *UseCase {
	return &UseCase{
		schedCore: schedCore,
		logger:    logger,
	}
}

// Execute выполняет запрос доступности.
// Оба аргумента обязательны: при отсутствии любого из них возвращается
// пустой результат без обращения к scheduling core.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	startSeconds, ok := normalizeArguments(req)
	if !ok {
		return &Response{Providers: []domain.Provider{}}, nil
	}

	uc.logger.Info("QueryAvailableProviders: startTime=%d, service=%d", startSeconds, req.ServiceID)

	wireProviders, err := uc.schedCore.AvailableProviders(ctx, startSeconds, req.ServiceID)
	if err != nil {
		// Fail closed: недоступность не означает "все свободны"
		uc.logger.Error("QueryAvailableProviders: upstream query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	providers := make([]domain.Provider, 0, len(wireProviders))
	for i := range wireProviders {
		providers = append(providers, *wireProviders[i].ToDomain())
	}

	// В режиме редактирования текущий мастер мог не попасть в ответ,
	// потому что слот занят самой редактируемой записью. Дотягиваем
	// его отдельным запросом, чтобы не заставлять пользователя
	// сбрасывать корректный выбор.
	if req.CurrentProviderID != nil && !containsProvider(providers, *req.CurrentProviderID) {
		current, err := uc.schedCore.GetProvider(ctx, *req.CurrentProviderID)
		switch {
		case err == nil:
			providers = append(providers, *current.ToDomain())
		case errors.Is(err, schedClient.ErrProviderNotFound):
			uc.logger.Warn("QueryAvailableProviders: current provider id=%d no longer exists", *req.CurrentProviderID)
		default:
			uc.logger.Error("QueryAvailableProviders: failed to fetch current provider id=%d: %v", *req.CurrentProviderID, err)
		}
	}

	uc.logger.Info("QueryAvailableProviders: %d providers available", len(providers))
	return &Response{Providers: providers}, nil
}

// normalizeArguments валидирует аргументы и нормализует время к секундам.
// Невалидные или отсутствующие аргументы эквивалентны пустому запросу.
func normalizeArguments(req *Request) (int64, bool) {
	if req.ServiceID <= 0 || req.StartTime <= 0 {
		return 0, false
	}
	startSeconds, err := timeunit.ToSeconds(req.StartTime)
	if err != nil {
		return 0, false
	}
	return startSeconds, true
}

func containsProvider(providers []domain.Provider, id int64) bool {
	for i := range providers {
		if providers[i].ID == id {
			return true
		}
	}
	return false
}
