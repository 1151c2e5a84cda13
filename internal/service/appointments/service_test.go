package appointments

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
func (nopLogger) Error(string, ...interface{}) {}

type fakeSchedCore struct {
	listStart, listEnd int64
	appointments       []schedcore.Appointment
	listErr            error

	lastStatusID  int64
	lastStatusReq *schedcore.UpdateStatusRequest
	statusCalls   int

	deletedID int64
}

func (f *fakeSchedCore) ListAppointments(_ context.Context, start, end int64) ([]schedcore.Appointment, error) {
	f.listStart, f.listEnd = start, end
	return f.appointments, f.listErr
}

func (f *fakeSchedCore) GetAppointment(_ context.Context, id int64) (*schedcore.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return &f.appointments[i], nil
		}
	}
	return nil, schedcore.ErrAppointmentNotFound
}

func (f *fakeSchedCore) UpdateAppointmentStatus(_ context.Context, id int64, req *schedcore.UpdateStatusRequest) (*schedcore.Appointment, error) {
	f.statusCalls++
	f.lastStatusID = id
	f.lastStatusReq = req
	return &schedcore.Appointment{ID: id, Status: req.Status}, nil
}

func (f *fakeSchedCore) DeleteAppointment(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func TestRange_NormalizesMillisecondBounds(t *testing.T) {
	core := &fakeSchedCore{appointments: []schedcore.Appointment{{ID: 1, StartTime: 1717200000, Status: "CONFIRMED"}}}
	svc := NewService(core, nopLogger{})

	result, err := svc.Range(context.Background(), 1717200000000, 1717286400000)

	require.NoError(t, err)
	assert.Equal(t, int64(1717200000), core.listStart)
	assert.Equal(t, int64(1717286400), core.listEnd)
	require.Len(t, result, 1)
}

func TestRange_RejectsInvertedBounds(t *testing.T) {
	svc := NewService(&fakeSchedCore{}, nopLogger{})

	_, err := svc.Range(context.Background(), 1717286400, 1717200000)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_CancelledRequiresReason(t *testing.T) {
	core := &fakeSchedCore{}
	svc := NewService(core, nopLogger{})
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 10, "CANCELLED", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, core.statusCalls)

	_, err = svc.UpdateStatus(ctx, 10, "CANCELLED", ptr.Ptr("  "))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, core.statusCalls)

	updated, err := svc.UpdateStatus(ctx, 10, "CANCELLED", ptr.Ptr("client asked"))
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", string(updated.Status))
	require.NotNil(t, core.lastStatusReq.CancellationReason)
}

func TestUpdateStatus_DropsReasonForOtherStatuses(t *testing.T) {
	core := &fakeSchedCore{}
	svc := NewService(core, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 10, "COMPLETED", ptr.Ptr("leftover"))

	require.NoError(t, err)
	assert.Nil(t, core.lastStatusReq.CancellationReason)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	core := &fakeSchedCore{}
	svc := NewService(core, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 10, "PENDING", nil)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, core.statusCalls)
}

func TestGet_MapsNotFound(t *testing.T) {
	svc := NewService(&fakeSchedCore{}, nopLogger{})

	_, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Passthrough(t *testing.T) {
	core := &fakeSchedCore{}
	svc := NewService(core, nopLogger{})

	err := svc.Delete(context.Background(), 15)

	require.NoError(t, err)
	assert.Equal(t, int64(15), core.deletedID)
}
