package directory

// ClientInput данные клиента для создания/обновления
type ClientInput struct {
	FirstName string
	LastName  string
	Phone     string
}

// ProviderInput данные мастера для создания/обновления
type ProviderInput struct {
	FirstName    string
	LastName     string
	Description  string
	IsActive     bool
	Availability []int
}

// ServiceInput данные услуги для создания/обновления
type ServiceInput struct {
	Name        string
	Description string
	Category    string
	Duration    int
	Price       *float64
	IsActive    bool
}

// ServicesFilter фильтры списка услуг
type ServicesFilter struct {
	ActiveOnly *bool
	Category   *string
}
