package schedcore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*CoreClient, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewCoreClient(ts.URL, 5*time.Second, nopLogger{}, nil), ts
}

func TestListServices_QueryParams(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]Service{
			{ID: 7, Name: "Haircut", Category: "HAIRCUT", Duration: 30, IsActive: true},
		})
	})

	active := true
	category := "HAIRCUT"
	services, err := c.ListServices(context.Background(), &active, &category)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, int64(7), services[0].ID)
	assert.Contains(t, gotQuery, "activeOnly=true")
	assert.Contains(t, gotQuery, "category=HAIRCUT")
}

func TestGetAppointment_NormalizesMilliseconds(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Сервер по контракту отдает секунды, но защищаемся от миллисекунд
		_ = json.NewEncoder(w).Encode(Appointment{
			ID: 1, ClientID: 3, ProviderID: 5, ServiceID: 7,
			StartTime: 1717200000000, Status: "CONFIRMED",
		})
	})

	apt, err := c.GetAppointment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1717200000), apt.StartTime)
}

func TestCreateAppointment_SendsSeconds(t *testing.T) {
	var body CreateAppointmentRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Appointment{
			ID: 42, ClientID: body.ClientID, ProviderID: body.ProviderID,
			ServiceID: body.ServiceID, StartTime: body.StartTime, Status: "CONFIRMED",
		})
	})

	// startTime в миллисекундах должен быть нормализован перед отправкой
	apt, err := c.CreateAppointment(context.Background(), &CreateAppointmentRequest{
		ClientID: 3, ProviderID: 5, ServiceID: 7, StartTime: 1717200000000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1717200000), body.StartTime)
	assert.Equal(t, int64(42), apt.ID)
}

func TestAvailableProviders(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/available-providers", r.URL.Path)
		assert.Equal(t, "1717200000", r.URL.Query().Get("startTime"))
		assert.Equal(t, "7", r.URL.Query().Get("serviceId"))
		_ = json.NewEncoder(w).Encode([]Provider{{ID: 5, FirstName: "Anna"}})
	})

	providers, err := c.AvailableProviders(context.Background(), 1717200000, 7)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, int64(5), providers[0].ID)
}

func TestNotFound_MappedPerEntity(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Message: "gone"})
	})

	_, err := c.GetProvider(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = c.GetAppointment(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCreateAppointment_Conflict(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Message: "Time slot is not available"})
	})

	_, err := c.CreateAppointment(context.Background(), &CreateAppointmentRequest{
		ClientID: 3, ProviderID: 5, ServiceID: 7, StartTime: 1717200000,
	})
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Contains(t, err.Error(), "Time slot is not available")
}

func TestDeleteAppointment(t *testing.T) {
	var method, path string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteAppointment(context.Background(), 42))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/appointments/42", path)
}

func TestTransportError_Unavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // закрываем заранее, чтобы получить сетевую ошибку

	c := NewCoreClient(ts.URL, time.Second, nopLogger{}, nil)
	_, err := c.ListClients(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
