package providers

import (
	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/service/directory"
)

// ProviderRequest HTTP request model
type ProviderRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	Availability []int  `json:"availability"`
}

// ProviderResponse HTTP response model
type ProviderResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Description  string `json:"description"`
	IsActive     bool   `json:"isActive"`
	Availability []int  `json:"availability"`
}

// ToInput конвертирует HTTP запрос в модель сервиса
func (r *ProviderRequest) ToInput() directory.ProviderInput {
	return directory.ProviderInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Description:  r.Description,
		IsActive:     r.IsActive,
		Availability: r.Availability,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(p *domain.Provider) *ProviderResponse {
	return &ProviderResponse{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Description:  p.Description,
		IsActive:     p.IsActive,
		Availability: p.Availability,
	}
}

// FromDomainList конвертирует список мастеров
func FromDomainList(list []domain.Provider) []*ProviderResponse {
	result := make([]*ProviderResponse, 0, len(list))
	for i := range list {
		result = append(result, FromDomain(&list[i]))
	}
	return result
}
