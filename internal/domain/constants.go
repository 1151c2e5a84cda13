package domain

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MinServiceDurationMinutes   = 1
	MaxServiceDurationMinutes   = 480 // 8 hours
)

// InactiveStatuses appointment statuses that do not occupy a slot
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
