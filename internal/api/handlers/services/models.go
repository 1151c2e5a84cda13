package services

import (
	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/service/directory"
)

// ServiceRequest HTTP request model
type ServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    int      `json:"duration"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    int      `json:"duration"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// ToInput конвертирует HTTP запрос в модель сервиса
func (r *ServiceRequest) ToInput() directory.ServiceInput {
	return directory.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Duration:    r.Duration,
		Price:       r.Price,
		IsActive:    r.IsActive,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    string(s.Category),
		Duration:    s.Duration,
		Price:       s.Price,
		IsActive:    s.IsActive,
	}
}

// FromDomainList конвертирует список услуг
func FromDomainList(list []domain.Service) []*ServiceResponse {
	result := make([]*ServiceResponse, 0, len(list))
	for i := range list {
		result = append(result, FromDomain(&list[i]))
	}
	return result
}
