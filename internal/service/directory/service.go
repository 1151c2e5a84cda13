package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/infra/cache/lookup"
	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
)

// Service справочники (клиенты, мастера, услуги) поверх scheduling core
// с кешированием списков. Источник истины всегда scheduling core, кеш
// лишь снимает нагрузку с частых чтений; любая мутация инвалидирует
// соответствующий список.
type Service struct {
	schedCore SchedCoreClient
	cache     LookupCache
	log       Logger
}

// NewService конструктор
func NewService(schedCore SchedCoreClient, cache LookupCache, log Logger) *Service {
	return &Service{
		schedCore: schedCore,
		cache:     cache,
		log:       log,
	}
}

// Clients список клиентов
func (s *Service) Clients(ctx context.Context) ([]domain.Client, error) {
	var cached []domain.Client
	if err := s.cache.Get(ctx, lookup.KeyClients, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, lookup.ErrCacheMiss) {
		s.log.Warn("lookup cache unavailable, reading clients from scheduling core: %v", err)
	}

	wire, err := s.schedCore.ListClients(ctx)
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	clients := make([]domain.Client, 0, len(wire))
	for i := range wire {
		clients = append(clients, *wire[i].ToDomain())
	}

	s.store(ctx, lookup.KeyClients, clients)

	return clients, nil
}

// CreateClient создает клиента и инвалидирует кеш списка
func (s *Service) CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if err := validateClientInput(input); err != nil {
		return nil, err
	}

	created, err := s.schedCore.CreateClient(ctx, saveClientRequest(input))
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	s.invalidate(ctx, lookup.KeyClients)

	return created.ToDomain(), nil
}

// UpdateClient обновляет клиента и инвалидирует кеш списка
func (s *Service) UpdateClient(ctx context.Context, id int64, input ClientInput) (*domain.Client, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if err := validateClientInput(input); err != nil {
		return nil, err
	}

	updated, err := s.schedCore.UpdateClient(ctx, id, saveClientRequest(input))
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	s.invalidate(ctx, lookup.KeyClients)

	return updated.ToDomain(), nil
}

// DeleteClient удаляет клиента и инвалидирует кеш списка
func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}

	if err := s.schedCore.DeleteClient(ctx, id); err != nil {
		return s.mapUpstreamError(err)
	}

	s.invalidate(ctx, lookup.KeyClients)

	return nil
}

// Providers список мастеров
func (s *Service) Providers(ctx context.Context) ([]domain.Provider, error) {
	var cached []domain.Provider
	if err := s.cache.Get(ctx, lookup.KeyProviders, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, lookup.ErrCacheMiss) {
		s.log.Warn("lookup cache unavailable, reading providers from scheduling core: %v", err)
	}

	wire, err := s.schedCore.ListProviders(ctx)
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	providers := make([]domain.Provider, 0, len(wire))
	for i := range wire {
		providers = append(providers, *wire[i].ToDomain())
	}

	s.store(ctx, lookup.KeyProviders, providers)

	return providers, nil
}

// Provider один мастер по id, без кеша
func (s *Service) Provider(ctx context.Context, id int64) (*domain.Provider, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}

	wire, err := s.schedCore.GetProvider(ctx, id)
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	return wire.ToDomain(), nil
}

// CreateProvider создает мастера и инвалидирует кеш списка
func (s *Service) CreateProvider(ctx context.Context, input ProviderInput) (*domain.Provider, error) {
	if err := validateProviderInput(input); err != nil {
		return nil, err
	}

	created, err := s.schedCore.CreateProvider(ctx, saveProviderRequest(input))
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	s.invalidate(ctx, lookup.KeyProviders)

	return created.ToDomain(), nil
}

// UpdateProvider обновляет мастера и инвалидирует кеш списка
func (s *Service) UpdateProvider(ctx context.Context, id int64, input ProviderInput) (*domain.Provider, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}
	if err := validateProviderInput(input); err != nil {
		return nil, err
	}

	updated, err := s.schedCore.UpdateProvider(ctx, id, saveProviderRequest(input))
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	s.invalidate(ctx, lookup.KeyProviders)

	return updated.ToDomain(), nil
}

// DeleteProvider удаляет мастера и инвалидирует кеш списка
func (s *Service) DeleteProvider(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}

	if err := s.schedCore.DeleteProvider(ctx, id); err != nil {
		return s.mapUpstreamError(err)
	}

	s.invalidate(ctx, lookup.KeyProviders)

	return nil
}

// Services список услуг с фильтрами. Каждая комбинация фильтров
// кешируется под своим ключом.
func (s *Service) Services(ctx context.Context, filter ServicesFilter) ([]domain.Service, error) {
	if filter.Category != nil && *filter.Category != "" {
		if !domain.IsValidCategory(domain.ServiceCategory(*filter.Category)) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *filter.Category)
		}
	}

	key := lookup.ServicesKey(filter.ActiveOnly, filter.Category)

	var cached []domain.Service
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, lookup.ErrCacheMiss) {
		s.log.Warn("lookup cache unavailable, reading services from scheduling core: %v", err)
	}

	wire, err := s.schedCore.ListServices(ctx, filter.ActiveOnly, filter.Category)
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	services := make([]domain.Service, 0, len(wire))
	for i := range wire {
		services = append(services, *wire[i].ToDomain())
	}

	s.store(ctx, key, services)

	return services, nil
}

// CreateService создает услугу и инвалидирует все варианты кеша услуг
func (s *Service) CreateService(ctx context.Context, input ServiceInput) (*domain.Service, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	created, err := s.schedCore.CreateService(ctx, saveServiceRequest(input))
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	s.invalidateServices(ctx)

	return created.ToDomain(), nil
}

// UpdateService обновляет услугу и инвалидирует все варианты кеша услуг
func (s *Service) UpdateService(ctx context.Context, id int64, input ServiceInput) (*domain.Service, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	updated, err := s.schedCore.UpdateService(ctx, id, saveServiceRequest(input))
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	s.invalidateServices(ctx)

	return updated.ToDomain(), nil
}

// DeleteService удаляет услугу и инвалидирует все варианты кеша услуг
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}

	if err := s.schedCore.DeleteService(ctx, id); err != nil {
		return s.mapUpstreamError(err)
	}

	s.invalidateServices(ctx)

	return nil
}

func (s *Service) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn("store %s in lookup cache: %v", key, err)
	}
}

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.Warn("invalidate lookup cache %v: %v", keys, err)
	}
}

func (s *Service) invalidateServices(ctx context.Context) {
	if err := s.cache.DeleteServices(ctx); err != nil {
		s.log.Warn("invalidate services lookup cache: %v", err)
	}
}

func (s *Service) mapUpstreamError(err error) error {
	switch {
	case errors.Is(err, schedcore.ErrClientNotFound),
		errors.Is(err, schedcore.ErrProviderNotFound),
		errors.Is(err, schedcore.ErrServiceNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, schedcore.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, schedcore.ErrUnavailable):
		s.log.Error("scheduling core unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		s.log.Error("unexpected scheduling core error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func validateClientInput(input ClientInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}

func validateProviderInput(input ProviderInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	for _, day := range input.Availability {
		if day < 1 || day > 7 {
			return fmt.Errorf("%w: availability days must be in 1..7, got %d", ErrInvalidInput, day)
		}
	}
	return nil
}

func validateServiceInput(input ServiceInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.IsValidCategory(domain.ServiceCategory(input.Category)) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, input.Category)
	}
	if input.Duration < domain.MinServiceDurationMinutes || input.Duration > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be in %d..%d minutes", ErrInvalidInput,
			domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if input.Price != nil && *input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func saveClientRequest(input ClientInput) *schedcore.SaveClientRequest {
	return &schedcore.SaveClientRequest{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
	}
}

func saveProviderRequest(input ProviderInput) *schedcore.SaveProviderRequest {
	return &schedcore.SaveProviderRequest{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Description:  input.Description,
		IsActive:     input.IsActive,
		Availability: input.Availability,
	}
}

func saveServiceRequest(input ServiceInput) *schedcore.SaveServiceRequest {
	return &schedcore.SaveServiceRequest{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Duration:    input.Duration,
		Price:       input.Price,
		IsActive:    input.IsActive,
	}
}
