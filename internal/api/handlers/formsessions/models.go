package formsessions

import (
	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/service/formsession"
)

// OpenSessionRequest HTTP request model открытия формы.
// appointmentId задаёт режим редактирования.
type OpenSessionRequest struct {
	AppointmentID *int64 `json:"appointmentId,omitempty"`
}

// PatchSessionRequest HTTP request model изменения полей.
// Отсутствующее поле не трогается; providerId равный 0 снимает выбор.
type PatchSessionRequest struct {
	ClientID           *int64  `json:"clientId,omitempty"`
	StartTime          *string `json:"startTime,omitempty"`
	ServiceID          *int64  `json:"serviceId,omitempty"`
	ProviderID         *int64  `json:"providerId,omitempty"`
	Status             *string `json:"status,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// LocksResponse доступность полей формы
type LocksResponse struct {
	TimeEnabled     bool `json:"timeEnabled"`
	ServiceEnabled  bool `json:"serviceEnabled"`
	ProviderEnabled bool `json:"providerEnabled"`
}

// ProviderResponse доступный мастер в ответе формы
type ProviderResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsActive  bool   `json:"isActive"`
}

// SessionResponse состояние формы после операции
type SessionResponse struct {
	ID                  string              `json:"id"`
	Mode                string              `json:"mode"`
	AppointmentID       int64               `json:"appointmentId,omitempty"`
	ClientID            *int64              `json:"clientId,omitempty"`
	StartTime           string              `json:"startTime,omitempty"`
	ServiceID           *int64              `json:"serviceId,omitempty"`
	ProviderID          *int64              `json:"providerId,omitempty"`
	Status              string              `json:"status"`
	Notes               *string             `json:"notes,omitempty"`
	CancellationReason  *string             `json:"cancellationReason,omitempty"`
	Locks               LocksResponse       `json:"locks"`
	AvailableProviders  []*ProviderResponse `json:"availableProviders"`
	AvailabilityMessage string              `json:"availabilityMessage,omitempty"`
}

// SubmitResponse итог успешной отправки формы
type SubmitResponse struct {
	AppointmentID int64 `json:"appointmentId"`
	StartTime     int64 `json:"startTime"`
	Replaced      bool  `json:"replaced"`
}

// ToPatch конвертирует HTTP запрос в модель сервиса
func (r *PatchSessionRequest) ToPatch() formsession.Patch {
	return formsession.Patch{
		ClientID:           r.ClientID,
		StartTime:          r.StartTime,
		ServiceID:          r.ServiceID,
		ProviderID:         r.ProviderID,
		Status:             r.Status,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
	}
}

// FromSnapshot конвертирует состояние формы в HTTP response
func FromSnapshot(s *formsession.Snapshot) *SessionResponse {
	return &SessionResponse{
		ID:                  s.ID,
		Mode:                string(s.Mode),
		AppointmentID:       s.AppointmentID,
		ClientID:            s.ClientID,
		StartTime:           s.StartTime,
		ServiceID:           s.ServiceID,
		ProviderID:          s.ProviderID,
		Status:              s.Status,
		Notes:               s.Notes,
		CancellationReason:  s.CancellationReason,
		Locks:               LocksResponse(s.Locks),
		AvailableProviders:  providersFromDomain(s.Available),
		AvailabilityMessage: s.AvailabilityMessage,
	}
}

func providersFromDomain(list []domain.Provider) []*ProviderResponse {
	result := make([]*ProviderResponse, 0, len(list))
	for i := range list {
		result = append(result, &ProviderResponse{
			ID:        list[i].ID,
			FirstName: list[i].FirstName,
			LastName:  list[i].LastName,
			IsActive:  list[i].IsActive,
		})
	}
	return result
}
