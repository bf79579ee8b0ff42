package models

type UnitStatus string

const (
	UnitStatusOccupied    UnitStatus = "Occupied"
	UnitStatusVacant      UnitStatus = "Vacant"
	UnitStatusMaintenance UnitStatus = "Maintenance"
)

// Unit is a rentable space belonging to exactly one property.
type Unit struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Number     int        `json:"number"`
	Status     UnitStatus `json:"status"`
	Price      float64    `json:"price"`
	Tenants    []Tenant   `json:"tenants"`
	PropertyID string     `json:"propertyId"`
}

func (u *Unit) Validate() error {
	if u.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if u.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

func DefaultUnit() Unit {
	return Unit{
		ID:         "u101",
		Name:       "Penthouse A-1",
		Number:     101,
		Status:     UnitStatusOccupied,
		Price:      3450,
		PropertyID: "3",
	}
}
