package incidents

import (
	"encoding/json"
	"time"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
)

// IncidentResponse HTTP response model инцидента.
// payload отдаётся как сырой JSON с данными потерянной записи.
type IncidentResponse struct {
	ID             int64           `json:"id"`
	AppointmentID  int64           `json:"appointmentId"`
	Payload        json.RawMessage `json:"payload"`
	Reason         string          `json:"reason"`
	CreatedAt      string          `json:"createdAt"`
	AcknowledgedAt *string         `json:"acknowledgedAt,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(inc *domain.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:            inc.ID,
		AppointmentID: inc.AppointmentID,
		Payload:       json.RawMessage(inc.Payload),
		Reason:        inc.Reason,
		CreatedAt:     inc.CreatedAt.Format(time.RFC3339),
	}
	if inc.AcknowledgedAt != nil {
		acked := inc.AcknowledgedAt.Format(time.RFC3339)
		resp.AcknowledgedAt = &acked
	}
	return resp
}

// FromDomainList конвертирует список инцидентов
func FromDomainList(list []*domain.Incident) []*IncidentResponse {
	result := make([]*IncidentResponse, 0, len(list))
	for _, inc := range list {
		result = append(result, FromDomain(inc))
	}
	return result
}
