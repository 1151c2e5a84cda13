package update_appointment

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
	existing *schedcore.Appointment

	ops []string

	createResults []*schedcore.Appointment
	createErrs    []error
	createCalls   int
	lastCreate    *schedcore.CreateAppointmentRequest

	statusResult *schedcore.Appointment
	statusErr    error
	lastStatusID int64
	lastStatus   *schedcore.UpdateStatusRequest

	deleteErr error
	deletedID int64
}

func (f *fakeSchedCore) GetAppointment(_ context.Context, id int64) (*schedcore.Appointment, error) {
	f.ops = append(f.ops, "get")
	if f.existing == nil {
		return nil, schedcore.ErrAppointmentNotFound
	}
	return f.existing, nil
}

func (f *fakeSchedCore) CreateAppointment(_ context.Context, req *schedcore.CreateAppointmentRequest) (*schedcore.Appointment, error) {
	f.ops = append(f.ops, "create")
	f.lastCreate = req
	i := f.createCalls
	f.createCalls++
	if i < len(f.createErrs) && f.createErrs[i] != nil {
		return nil, f.createErrs[i]
	}
	if i < len(f.createResults) {
		return f.createResults[i], nil
	}
	return &schedcore.Appointment{ID: 100, StartTime: req.StartTime, Status: "CONFIRMED"}, nil
}

func (f *fakeSchedCore) UpdateAppointmentStatus(_ context.Context, id int64, req *schedcore.UpdateStatusRequest) (*schedcore.Appointment, error) {
	f.ops = append(f.ops, "status")
	f.lastStatusID = id
	f.lastStatus = req
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if f.statusResult != nil {
		return f.statusResult, nil
	}
	return &schedcore.Appointment{ID: id, Status: req.Status}, nil
}

func (f *fakeSchedCore) DeleteAppointment(_ context.Context, id int64) error {
	f.ops = append(f.ops, "delete")
	f.deletedID = id
	return f.deleteErr
}

type fakeIncidents struct {
	calls   int
	lastID  int64
	payload string
	reason  string
	err     error
}

func (f *fakeIncidents) RecordReplaceFailure(_ context.Context, appointmentID int64, payload string, reason string) error {
	f.calls++
	f.lastID = appointmentID
	f.payload = payload
	f.reason = reason
	return f.err
}

func baseExisting() *schedcore.Appointment {
	return &schedcore.Appointment{
		ID:         10,
		ClientID:   1,
		ProviderID: 2,
		ServiceID:  3,
		StartTime:  1717200000,
		Status:     "CONFIRMED",
	}
}

func baseRequest() *Request {
	return &Request{
		AppointmentID: 10,
		ClientID:      1,
		ProviderID:    2,
		ServiceID:     3,
		StartTime:     1717200000,
		Status:        "CONFIRMED",
	}
}

func TestExecute_NoChangesNoMutations(t *testing.T) {
	core := &fakeSchedCore{existing: baseExisting()}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), baseRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.Appointment.ID)
	assert.False(t, resp.Replaced)
	assert.Equal(t, []string{"get"}, core.ops)
}

func TestExecute_EmptyNotesEqualAbsent(t *testing.T) {
	existing := baseExisting()
	existing.Notes = ptr.Ptr("")
	core := &fakeSchedCore{existing: existing}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), baseRequest())

	require.NoError(t, err)
	assert.False(t, resp.Replaced)
	assert.Equal(t, []string{"get"}, core.ops)
}

func TestExecute_StatusOnlySinglePatch(t *testing.T) {
	core := &fakeSchedCore{existing: baseExisting()}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	req := baseRequest()
	req.Status = "COMPLETED"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Replaced)
	assert.Equal(t, []string{"get", "status"}, core.ops)
	assert.Equal(t, int64(10), core.lastStatusID)
	assert.Equal(t, "COMPLETED", core.lastStatus.Status)
}

func TestExecute_CancelRequiresReason(t *testing.T) {
	core := &fakeSchedCore{existing: baseExisting()}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	req := baseRequest()
	req.Status = "CANCELLED"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, core.ops)
}

func TestExecute_CancelSendsReason(t *testing.T) {
	core := &fakeSchedCore{existing: baseExisting()}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	req := baseRequest()
	req.Status = "CANCELLED"
	req.CancellationReason = ptr.Ptr("client asked to cancel")

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"get", "status"}, core.ops)
	require.NotNil(t, core.lastStatus.CancellationReason)
	assert.Equal(t, "client asked to cancel", *core.lastStatus.CancellationReason)
}

func TestExecute_SubstantiveChangeDeletesThenCreates(t *testing.T) {
	core := &fakeSchedCore{existing: baseExisting()}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	req := baseRequest()
	req.StartTime = 1717203600

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Replaced)
	assert.Equal(t, []string{"get", "delete", "create"}, core.ops)
	assert.Equal(t, int64(10), core.deletedID)
	assert.Equal(t, int64(1717203600), core.lastCreate.StartTime)
	assert.Equal(t, int64(100), resp.Appointment.ID)
}

func TestExecute_ReplaceNormalizesMilliseconds(t *testing.T) {
	core := &fakeSchedCore{existing: baseExisting()}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	req := baseRequest()
	req.StartTime = 1717203600000

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1717203600), core.lastCreate.StartTime)
}

func TestExecute_SameTimeInMillisecondsIsNoChange(t *testing.T) {
	core := &fakeSchedCore{existing: baseExisting()}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	req := baseRequest()
	req.StartTime = 1717200000000

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Replaced)
	assert.Equal(t, []string{"get"}, core.ops)
}

func TestExecute_CreateRetriedOnce(t *testing.T) {
	core := &fakeSchedCore{
		existing:   baseExisting(),
		createErrs: []error{schedcore.ErrUnavailable, nil},
	}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	req := baseRequest()
	req.ServiceID = 4

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Replaced)
	assert.Equal(t, []string{"get", "delete", "create", "create"}, core.ops)
}

func TestExecute_PartialFailureRecordsIncident(t *testing.T) {
	core := &fakeSchedCore{
		existing:   baseExisting(),
		createErrs: []error{schedcore.ErrSlotConflict, schedcore.ErrSlotConflict},
	}
	incidents := &fakeIncidents{}
	uc := NewUsecase(core, incidents, nopLogger{})

	req := baseRequest()
	req.StartTime = 1717203600
	req.Notes = ptr.Ptr("rebooked by phone")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPartialFailure)
	assert.Equal(t, []string{"get", "delete", "create", "create"}, core.ops)
	assert.Equal(t, 1, incidents.calls)
	assert.Equal(t, int64(10), incidents.lastID)
	assert.Contains(t, incidents.payload, `"startTime":1717203600`)
	assert.Contains(t, incidents.payload, "rebooked by phone")
}

func TestExecute_DeleteFailureLeavesOriginalIntact(t *testing.T) {
	core := &fakeSchedCore{
		existing:  baseExisting(),
		deleteErr: schedcore.ErrUnavailable,
	}
	incidents := &fakeIncidents{}
	uc := NewUsecase(core, incidents, nopLogger{})

	req := baseRequest()
	req.StartTime = 1717203600

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, []string{"get", "delete"}, core.ops)
	assert.Zero(t, incidents.calls)
}

func TestExecute_ReplaceReappliesStatus(t *testing.T) {
	existing := baseExisting()
	core := &fakeSchedCore{existing: existing}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	req := baseRequest()
	req.StartTime = 1717203600
	req.Status = "CANCELLED"
	req.CancellationReason = ptr.Ptr("provider sick")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"get", "delete", "create", "status"}, core.ops)
	assert.Equal(t, int64(100), core.lastStatusID)
	assert.Equal(t, "CANCELLED", string(resp.Appointment.Status))
}

func TestExecute_MissingAppointment(t *testing.T) {
	core := &fakeSchedCore{}
	uc := NewUsecase(core, &fakeIncidents{}, nopLogger{})

	_, err := uc.Execute(context.Background(), baseRequest())

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
