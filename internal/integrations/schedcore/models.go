package schedcore

import "github.com/clarkyangjw/schedulease-web/internal/domain"

// Client модель клиента из scheduling core
type Client struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// ToDomain конвертирует wire-модель в доменную
func (c *Client) ToDomain() *domain.Client {
	return &domain.Client{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
	}
}

// Provider модель мастера из scheduling core
type Provider struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	Availability []int  `json:"availability"` // ISO-номера дней недели 1-7
}

// ToDomain конвертирует wire-модель в доменную
func (p *Provider) ToDomain() *domain.Provider {
	return &domain.Provider{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Description:  p.Description,
		IsActive:     p.IsActive,
		Availability: p.Availability,
	}
}

// Service модель услуги из scheduling core
type Service struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    int      `json:"duration"` // минуты
	Price       *float64 `json:"price,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// ToDomain конвертирует wire-модель в доменную
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    domain.ServiceCategory(s.Category),
		Duration:    s.Duration,
		Price:       s.Price,
		IsActive:    s.IsActive,
	}
}

// Appointment модель записи из scheduling core.
// Сервер может возвращать как плоские id, так и вложенные объекты —
// обе формы встречаются в ответах.
type Appointment struct {
	ID                 int64     `json:"id"`
	ClientID           int64     `json:"clientId"`
	ProviderID         int64     `json:"providerId"`
	ServiceID          int64     `json:"serviceId"`
	Client             *Client   `json:"client,omitempty"`
	Provider           *Provider `json:"provider,omitempty"`
	Service            *Service  `json:"service,omitempty"`
	StartTime          int64     `json:"startTime"` // секунды (нормализуются при чтении)
	Status             string    `json:"status"`
	Notes              *string   `json:"notes,omitempty"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
}

// ToDomain конвертирует wire-модель в доменную.
// Вложенные объекты имеют приоритет над плоскими id.
func (a *Appointment) ToDomain() *domain.Appointment {
	out := &domain.Appointment{
		ID:                 a.ID,
		ClientID:           a.ClientID,
		ProviderID:         a.ProviderID,
		ServiceID:          a.ServiceID,
		StartTime:          a.StartTime,
		Status:             domain.AppointmentStatus(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
	}
	if a.Client != nil {
		out.ClientID = a.Client.ID
	}
	if a.Provider != nil {
		out.ProviderID = a.Provider.ID
	}
	if a.Service != nil {
		out.ServiceID = a.Service.ID
	}
	return out
}

// CreateAppointmentRequest тело запроса на создание записи
type CreateAppointmentRequest struct {
	ClientID   int64   `json:"clientId"`
	ProviderID int64   `json:"providerId"`
	ServiceID  int64   `json:"serviceId"`
	StartTime  int64   `json:"startTime"` // секунды
	Notes      *string `json:"notes,omitempty"`
}

// UpdateStatusRequest тело запроса на смену статуса записи
type UpdateStatusRequest struct {
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// SaveClientRequest тело запроса на создание/обновление клиента
type SaveClientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// SaveProviderRequest тело запроса на создание/обновление мастера
type SaveProviderRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	Availability []int  `json:"availability"`
}

// SaveServiceRequest тело запроса на создание/обновление услуги
type SaveServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    int      `json:"duration"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// ErrorResponse модель ошибки scheduling core.
// Поле message (если есть) используется как текст для пользователя.
type ErrorResponse struct {
	Message string `json:"message"`
}
