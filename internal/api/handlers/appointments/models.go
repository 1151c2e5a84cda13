package appointments

import (
	"github.com/clarkyangjw/schedulease-web/internal/domain"
	createAppointment "github.com/clarkyangjw/schedulease-web/internal/usecase/create_appointment"
	updateAppointment "github.com/clarkyangjw/schedulease-web/internal/usecase/update_appointment"
)

// CreateAppointmentRequest HTTP request model.
// startTime принимается в секундах или миллисекундах.
type CreateAppointmentRequest struct {
	ClientID   int64   `json:"clientId"`
	ProviderID int64   `json:"providerId"`
	ServiceID  int64   `json:"serviceId"`
	StartTime  int64   `json:"startTime"`
	Notes      *string `json:"notes,omitempty"`
}

// UpdateAppointmentRequest HTTP request model полного редактирования
type UpdateAppointmentRequest struct {
	ClientID           int64   `json:"clientId"`
	ProviderID         int64   `json:"providerId"`
	ServiceID          int64   `json:"serviceId"`
	StartTime          int64   `json:"startTime"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest HTTP request model смены статуса
type UpdateStatusRequest struct {
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// AppointmentResponse HTTP response model.
// startTime всегда в секундах.
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	ClientID           int64   `json:"clientId"`
	ProviderID         int64   `json:"providerId"`
	ServiceID          int64   `json:"serviceId"`
	StartTime          int64   `json:"startTime"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateAppointmentResponse ответ редактирования: при пересоздании
// записи идентификатор меняется
type UpdateAppointmentResponse struct {
	Appointment *AppointmentResponse `json:"appointment"`
	Replaced    bool                 `json:"replaced"`
}

// ProviderResponse HTTP response model доступного мастера
type ProviderResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	Availability []int  `json:"availability"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		ClientID:   r.ClientID,
		ProviderID: r.ProviderID,
		ServiceID:  r.ServiceID,
		StartTime:  r.StartTime,
		Notes:      r.Notes,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) *updateAppointment.Request {
	return &updateAppointment.Request{
		AppointmentID:      id,
		ClientID:           r.ClientID,
		ProviderID:         r.ProviderID,
		ServiceID:          r.ServiceID,
		StartTime:          r.StartTime,
		Status:             r.Status,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		ClientID:           a.ClientID,
		ProviderID:         a.ProviderID,
		ServiceID:          a.ServiceID,
		StartTime:          a.StartTime,
		Status:             string(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
	}
}

// FromDomainList конвертирует список записей
func FromDomainList(list []domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(list))
	for i := range list {
		result = append(result, FromDomain(&list[i]))
	}
	return result
}

// ProvidersFromDomain конвертирует список мастеров
func ProvidersFromDomain(list []domain.Provider) []*ProviderResponse {
	result := make([]*ProviderResponse, 0, len(list))
	for i := range list {
		result = append(result, &ProviderResponse{
			ID:           list[i].ID,
			FirstName:    list[i].FirstName,
			LastName:     list[i].LastName,
			Description:  list[i].Description,
			IsActive:     list[i].IsActive,
			Availability: list[i].Availability,
		})
	}
	return result
}
