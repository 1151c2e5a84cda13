package domain

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// Appointment represents a scheduled appointment owned by the scheduling core.
// The gateway only holds transient copies; StartTime is always whole seconds
// since epoch on the wire.
type Appointment struct {
	ID                 int64
	ClientID           int64
	ProviderID         int64
	ServiceID          int64
	StartTime          int64
	Status             AppointmentStatus
	Notes              *string
	CancellationReason *string
}

// IsValidStatus returns true if s is one of the known appointment statuses
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// RequiresCancellationReason returns true if the status requires a reason
func RequiresCancellationReason(s AppointmentStatus) bool {
	return s == StatusCancelled
}
