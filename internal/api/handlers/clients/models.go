package clients

import (
	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/service/directory"
)

// ClientRequest HTTP request model
type ClientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// ClientResponse HTTP response model
type ClientResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// ToInput конвертирует HTTP запрос в модель сервиса
func (r *ClientRequest) ToInput() directory.ClientInput {
	return directory.ClientInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
	}
}

// FromDomainList конвертирует список клиентов
func FromDomainList(list []domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, 0, len(list))
	for i := range list {
		result = append(result, FromDomain(&list[i]))
	}
	return result
}
