package domain

// Client represents a customer of the scheduling business
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
}

// ServiceCategory represents the category of a service
type ServiceCategory string

const (
	CategoryHaircut ServiceCategory = "HAIRCUT"
	CategoryMassage ServiceCategory = "MASSAGE"
)

// IsValidCategory returns true if c is one of the known service categories
func IsValidCategory(c ServiceCategory) bool {
	return c == CategoryHaircut || c == CategoryMassage
}

// Service represents a bookable service
type Service struct {
	ID          int64
	Name        string
	Description string
	Category    ServiceCategory
	Duration    int // minutes, always positive
	Price       *float64
	IsActive    bool
}

// Provider represents a service provider.
// Availability holds ISO weekday numbers (1 = Monday ... 7 = Sunday).
type Provider struct {
	ID           int64
	FirstName    string
	LastName     string
	Description  string
	IsActive     bool
	Availability []int
}

// WorksOn returns true if the provider works on the given ISO weekday
func (p *Provider) WorksOn(weekday int) bool {
	for _, d := range p.Availability {
		if d == weekday {
			return true
		}
	}
	return false
}
