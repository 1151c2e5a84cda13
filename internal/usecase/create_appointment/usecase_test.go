package create_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
	"github.com/clarkyangjw/schedulease-web/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSchedCore struct {
	lastRequest *schedcore.CreateAppointmentRequest
	result      *schedcore.Appointment
	err         error
	calls       int
}

func (f *fakeSchedCore) CreateAppointment(_ context.Context, req *schedcore.CreateAppointmentRequest) (*schedcore.Appointment, error) {
	f.calls++
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestExecute_CreatesAppointment(t *testing.T) {
	core := &fakeSchedCore{
		result: &schedcore.Appointment{
			ID:         42,
			ClientID:   1,
			ProviderID: 2,
			ServiceID:  3,
			StartTime:  1717200000,
			Status:     "CONFIRMED",
		},
	}
	uc := NewUsecase(core, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:   1,
		ProviderID: 2,
		ServiceID:  3,
		StartTime:  1717200000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Appointment.ID)
	assert.Equal(t, int64(1717200000), core.lastRequest.StartTime)
}

func TestExecute_NormalizesMillisecondsBeforeSend(t *testing.T) {
	core := &fakeSchedCore{
		result: &schedcore.Appointment{ID: 1, StartTime: 1717200000, Status: "CONFIRMED"},
	}
	uc := NewUsecase(core, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:   1,
		ProviderID: 2,
		ServiceID:  3,
		StartTime:  1717200000123,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1717200000), core.lastRequest.StartTime)
}

func TestExecute_NormalizesEmptyNotesToAbsent(t *testing.T) {
	core := &fakeSchedCore{
		result: &schedcore.Appointment{ID: 1, StartTime: 1717200000, Status: "CONFIRMED"},
	}
	uc := NewUsecase(core, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:   1,
		ProviderID: 2,
		ServiceID:  3,
		StartTime:  1717200000,
		Notes:      ptr.Ptr("   "),
	})

	require.NoError(t, err)
	assert.Nil(t, core.lastRequest.Notes)
}

func TestExecute_RejectsInvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"nil request", nil},
		{"zero client", &Request{ProviderID: 2, ServiceID: 3, StartTime: 1717200000}},
		{"zero provider", &Request{ClientID: 1, ServiceID: 3, StartTime: 1717200000}},
		{"zero service", &Request{ClientID: 1, ProviderID: 2, StartTime: 1717200000}},
		{"zero start time", &Request{ClientID: 1, ProviderID: 2, ServiceID: 3}},
		{"negative start time", &Request{ClientID: 1, ProviderID: 2, ServiceID: 3, StartTime: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := &fakeSchedCore{}
			uc := NewUsecase(core, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Zero(t, core.calls)
		})
	}
}

func TestExecute_MapsUpstreamErrors(t *testing.T) {
	tests := []struct {
		name     string
		upstream error
		want     error
	}{
		{"slot conflict", schedcore.ErrSlotConflict, ErrSlotConflict},
		{"client missing", schedcore.ErrClientNotFound, ErrReferenceNotFound},
		{"provider missing", schedcore.ErrProviderNotFound, ErrReferenceNotFound},
		{"bad request", schedcore.ErrBadRequest, ErrInvalidRequest},
		{"core down", schedcore.ErrUnavailable, ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := &fakeSchedCore{err: tt.upstream}
			uc := NewUsecase(core, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				ClientID:   1,
				ProviderID: 2,
				ServiceID:  3,
				StartTime:  1717200000,
			})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}
