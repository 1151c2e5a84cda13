package domain

import "time"

// Incident records a replace-on-edit that lost its original appointment:
// the delete succeeded but the follow-up create failed even after a retry.
// Incidents stay open until an operator acknowledges them.
type Incident struct {
	ID            int64
	AppointmentID int64  // id of the appointment that was deleted
	Payload       string // submitted appointment JSON, for manual recreation
	Reason        string
	CreatedAt     time.Time
	AcknowledgedAt *time.Time
}

// IsOpen returns true if the incident has not been acknowledged yet
func (i *Incident) IsOpen() bool {
	return i.AcknowledgedAt == nil
}
