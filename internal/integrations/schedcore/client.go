package schedcore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/clarkyangjw/schedulease-web/pkg/timeunit"
)

const (
	clientsEndpoint      = "/api/clients"
	providersEndpoint    = "/api/providers"
	servicesEndpoint     = "/api/services"
	appointmentsEndpoint = "/api/appointments"

	availableProvidersEndpoint = "/api/appointments/available-providers"

	metricsTarget = "schedcore"
)

// CoreClient клиент для работы со scheduling core API.
// Все timestamp, пересекающие границу API, — целые секунды; нормализация
// единиц выполняется здесь и только здесь, а не на call site-ах.
type CoreClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewCoreClient создает новый экземпляр клиента scheduling core
func NewCoreClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *CoreClient {
	return &CoreClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// ListClients получает список всех клиентов
func (c *CoreClient) ListClients(ctx context.Context) ([]Client, error) {
	var out []Client
	if err := c.do(ctx, http.MethodGet, clientsEndpoint, nil, nil, &out, "list_clients"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateClient создает клиента
func (c *CoreClient) CreateClient(ctx context.Context, req *SaveClientRequest) (*Client, error) {
	var out Client
	if err := c.do(ctx, http.MethodPost, clientsEndpoint, nil, req, &out, "create_client"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient обновляет клиента
func (c *CoreClient) UpdateClient(ctx context.Context, id int64, req *SaveClientRequest) (*Client, error) {
	var out Client
	path := fmt.Sprintf("%s/%d", clientsEndpoint, id)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &out, "update_client"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient удаляет клиента
func (c *CoreClient) DeleteClient(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", clientsEndpoint, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, "delete_client")
}

// ListProviders получает список всех мастеров
func (c *CoreClient) ListProviders(ctx context.Context) ([]Provider, error) {
	var out []Provider
	if err := c.do(ctx, http.MethodGet, providersEndpoint, nil, nil, &out, "list_providers"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProvider получает мастера по id
func (c *CoreClient) GetProvider(ctx context.Context, id int64) (*Provider, error) {
	var out Provider
	path := fmt.Sprintf("%s/%d", providersEndpoint, id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out, "get_provider"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProvider создает мастера
func (c *CoreClient) CreateProvider(ctx context.Context, req *SaveProviderRequest) (*Provider, error) {
	var out Provider
	if err := c.do(ctx, http.MethodPost, providersEndpoint, nil, req, &out, "create_provider"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProvider обновляет мастера
func (c *CoreClient) UpdateProvider(ctx context.Context, id int64, req *SaveProviderRequest) (*Provider, error) {
	var out Provider
	path := fmt.Sprintf("%s/%d", providersEndpoint, id)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &out, "update_provider"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProvider удаляет мастера
func (c *CoreClient) DeleteProvider(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", providersEndpoint, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, "delete_provider")
}

// ListServices получает список услуг с опциональной фильтрацией
func (c *CoreClient) ListServices(ctx context.Context, activeOnly *bool, category *string) ([]Service, error) {
	query := url.Values{}
	if activeOnly != nil {
		query.Set("activeOnly", strconv.FormatBool(*activeOnly))
	}
	if category != nil && *category != "" {
		query.Set("category", *category)
	}

	var out []Service
	if err := c.do(ctx, http.MethodGet, servicesEndpoint, query, nil, &out, "list_services"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateService создает услугу
func (c *CoreClient) CreateService(ctx context.Context, req *SaveServiceRequest) (*Service, error) {
	var out Service
	if err := c.do(ctx, http.MethodPost, servicesEndpoint, nil, req, &out, "create_service"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateService обновляет услугу
func (c *CoreClient) UpdateService(ctx context.Context, id int64, req *SaveServiceRequest) (*Service, error) {
	var out Service
	path := fmt.Sprintf("%s/%d", servicesEndpoint, id)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &out, "update_service"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteService удаляет (деактивирует) услугу
func (c *CoreClient) DeleteService(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", servicesEndpoint, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, "delete_service")
}

// ListAppointments получает записи за период. Границы периода — секунды.
func (c *CoreClient) ListAppointments(ctx context.Context, startSeconds, endSeconds int64) ([]Appointment, error) {
	query := url.Values{}
	query.Set("startTime", strconv.FormatInt(startSeconds, 10))
	query.Set("endTime", strconv.FormatInt(endSeconds, 10))

	var out []Appointment
	if err := c.do(ctx, http.MethodGet, appointmentsEndpoint, query, nil, &out, "list_appointments"); err != nil {
		return nil, err
	}

	for i := range out {
		if err := normalizeAppointment(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// GetAppointment получает запись по id
func (c *CoreClient) GetAppointment(ctx context.Context, id int64) (*Appointment, error) {
	var out Appointment
	path := fmt.Sprintf("%s/%d", appointmentsEndpoint, id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out, "get_appointment"); err != nil {
		return nil, err
	}
	if err := normalizeAppointment(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AvailableProviders запрашивает мастеров, свободных для пары
// (startTime в секундах, serviceId)
func (c *CoreClient) AvailableProviders(ctx context.Context, startSeconds, serviceID int64) ([]Provider, error) {
	query := url.Values{}
	query.Set("startTime", strconv.FormatInt(startSeconds, 10))
	query.Set("serviceId", strconv.FormatInt(serviceID, 10))

	var out []Provider
	if err := c.do(ctx, http.MethodGet, availableProvidersEndpoint, query, nil, &out, "available_providers"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment создает запись. StartTime нормализуется к секундам
// перед отправкой.
func (c *CoreClient) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	seconds, err := timeunit.ToSeconds(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	body := *req
	body.StartTime = seconds

	var out Appointment
	if err := c.do(ctx, http.MethodPost, appointmentsEndpoint, nil, &body, &out, "create_appointment"); err != nil {
		return nil, err
	}
	if err := normalizeAppointment(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointmentStatus меняет статус записи
func (c *CoreClient) UpdateAppointmentStatus(ctx context.Context, id int64, req *UpdateStatusRequest) (*Appointment, error) {
	var out Appointment
	path := fmt.Sprintf("%s/%d/status", appointmentsEndpoint, id)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &out, "update_appointment_status"); err != nil {
		return nil, err
	}
	if err := normalizeAppointment(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAppointment удаляет запись
func (c *CoreClient) DeleteAppointment(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", appointmentsEndpoint, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, "delete_appointment")
}

// do выполняет HTTP-запрос к scheduling core и маппит статус-коды
// на sentinel-ошибки клиента
func (c *CoreClient) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body interface{},
	out interface{},
	operation string,
) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "transport_error", start)
		c.log.Error("schedcore: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		c.observe(operation, "not_found", start)
		return c.notFoundError(path, resp)
	case resp.StatusCode == http.StatusConflict:
		c.observe(operation, "conflict", start)
		return fmt.Errorf("%w: %s", ErrSlotConflict, upstreamMessage(resp, "time slot is not available"))
	case resp.StatusCode == http.StatusBadRequest:
		c.observe(operation, "bad_request", start)
		return fmt.Errorf("%w: %s", ErrBadRequest, upstreamMessage(resp, "request rejected"))
	default:
		c.observe(operation, "error", start)
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("schedcore: %s %s returned status %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.observe(operation, "decode_error", start)
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	c.observe(operation, "ok", start)
	return nil
}

// notFoundError подбирает sentinel по endpoint-у, чтобы вызывающий код
// мог различать, какая именно сущность исчезла
func (c *CoreClient) notFoundError(path string, resp *http.Response) error {
	msg := upstreamMessage(resp, "not found")
	switch {
	case strings.HasPrefix(path, clientsEndpoint):
		return fmt.Errorf("%w: %s", ErrClientNotFound, msg)
	case strings.HasPrefix(path, providersEndpoint):
		return fmt.Errorf("%w: %s", ErrProviderNotFound, msg)
	case strings.HasPrefix(path, servicesEndpoint):
		return fmt.Errorf("%w: %s", ErrServiceNotFound, msg)
	default:
		return fmt.Errorf("%w: %s", ErrAppointmentNotFound, msg)
	}
}

func (c *CoreClient) observe(operation, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveUpstream(metricsTarget, operation, outcome, time.Since(start).Seconds())
}

// upstreamMessage извлекает поле message из тела ошибки.
// При его отсутствии используется generic-текст.
func upstreamMessage(resp *http.Response, fallback string) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return fallback
}

// normalizeAppointment прогоняет startTime через нормализацию единиц.
// Каждое чтение из API обязано пройти через timeunit.ToSeconds.
func normalizeAppointment(a *Appointment) error {
	seconds, err := timeunit.ToSeconds(a.StartTime)
	if err != nil {
		return fmt.Errorf("%w: appointment id=%d has invalid startTime %d", ErrInvalidResponse, a.ID, a.StartTime)
	}
	a.StartTime = seconds
	return nil
}
