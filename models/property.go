package models

type PropertyStatus string

const (
	PropertyStatusActive     PropertyStatus = "Active"
	PropertyStatusPending    PropertyStatus = "Pending"
	PropertyStatusRenovation PropertyStatus = "Renovation"
)

type RentalMode string

const (
	RentalModeLongTerm   RentalMode = "Long-term"
	RentalModeShortTerm  RentalMode = "Short-term"
	RentalModeCommercial RentalMode = "Commercial"
	RentalModeIndustrial RentalMode = "Industrial"
)

// Property is a managed building or complex. Tenants holds embedded
// occupant snapshots and is only used to derive the occupancy count;
// Images keeps display order.
type Property struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Country     string         `json:"country"`
	PostCode    string         `json:"postCode"`
	Status      PropertyStatus `json:"status"`
	Size        float64        `json:"size"`
	Units       []Unit         `json:"units"`
	MonthlyRent float64        `json:"monthlyRent"`
	Description string         `json:"description"`
	Tenants     []Tenant       `json:"tenants"`
	RentalMode  RentalMode     `json:"rentalMode"`
	MaxUnits    int            `json:"maxUnits"`
	Images      []string       `json:"images,omitempty"`
}

type PropertyPatch struct {
	Name        *string         `json:"name,omitempty"`
	Address     *string         `json:"address,omitempty"`
	City        *string         `json:"city,omitempty"`
	State       *string         `json:"state,omitempty"`
	Country     *string         `json:"country,omitempty"`
	PostCode    *string         `json:"postCode,omitempty"`
	Status      *PropertyStatus `json:"status,omitempty"`
	Size        *float64        `json:"size,omitempty"`
	MonthlyRent *float64        `json:"monthlyRent,omitempty"`
	Description *string         `json:"description,omitempty"`
	RentalMode  *RentalMode     `json:"rentalMode,omitempty"`
	MaxUnits    *int            `json:"maxUnits,omitempty"`
	Images      []string        `json:"images,omitempty"`
}

func (p *PropertyPatch) Validate() error {
	if p.Size != nil && *p.Size <= 0 {
		return &ValidationError{Field: "size", Reason: "must be positive"}
	}
	if p.MonthlyRent != nil && *p.MonthlyRent < 0 {
		return &ValidationError{Field: "monthlyRent", Reason: "must not be negative"}
	}
	if p.MaxUnits != nil && *p.MaxUnits <= 0 {
		return &ValidationError{Field: "maxUnits", Reason: "must be positive"}
	}
	return nil
}

// Validate enforces the occupancy invariant: the embedded tenant count
// must not exceed capacity.
func (p *Property) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if p.Size <= 0 {
		return &ValidationError{Field: "size", Reason: "must be positive"}
	}
	if p.MonthlyRent < 0 {
		return &ValidationError{Field: "monthlyRent", Reason: "must not be negative"}
	}
	if p.MaxUnits <= 0 {
		return &ValidationError{Field: "maxUnits", Reason: "must be positive"}
	}
	if len(p.Tenants) > p.MaxUnits {
		return &ValidationError{Field: "tenants", Reason: "occupancy exceeds maxUnits"}
	}
	return nil
}

func DefaultProperty() Property {
	return Property{
		ID:          "3",
		Name:        "Harbor View Apartments",
		Address:     "123 Coastal Way",
		City:        "San Francisco",
		State:       "CA",
		Country:     "United States",
		PostCode:    "94105",
		Status:      PropertyStatusActive,
		Size:        15000,
		MonthlyRent: 45000,
		Description: "Luxury oceanfront residential complex.",
		RentalMode:  RentalModeLongTerm,
		MaxUnits:    24,
	}
}
