package models

type LeaseStatus string

const (
	LeaseStatusActive   LeaseStatus = "active"
	LeaseStatusExpiring LeaseStatus = "expiring"
	LeaseStatusExpired  LeaseStatus = "expired"
	LeaseStatusPending  LeaseStatus = "pending"
)

// Lease binds a tenant to a property, and optionally to a single unit.
// UnitID and UnitName are both empty for a whole-property lease; a
// record with only one of them set is inconsistent.
type Lease struct {
	ID           string      `json:"id"`
	TenantID     string      `json:"tenantId"`
	TenantName   string      `json:"tenantName"`
	UnitID       string      `json:"unitId,omitempty"`
	UnitName     string      `json:"unitName,omitempty"`
	PropertyID   string      `json:"propertyId"`
	PropertyName string      `json:"propertyName"`
	StartDate    string      `json:"startDate"`
	EndDate      string      `json:"endDate"`
	MonthlyRent  float64     `json:"monthlyRent"`
	Deposit      float64     `json:"deposit"`
	Status       LeaseStatus `json:"status"`
}

// WholeProperty reports whether the lease covers the entire property
// rather than a single unit.
func (l *Lease) WholeProperty() bool {
	return l.UnitID == "" && l.UnitName == ""
}

func (l *Lease) Validate() error {
	if l.TenantID == "" {
		return &ValidationError{Field: "tenantId", Reason: "required"}
	}
	if l.PropertyID == "" {
		return &ValidationError{Field: "propertyId", Reason: "required"}
	}
	if (l.UnitID == "") != (l.UnitName == "") {
		return &ValidationError{Field: "unitId", Reason: "unitId and unitName must be set together"}
	}
	if l.MonthlyRent < 0 {
		return &ValidationError{Field: "monthlyRent", Reason: "must not be negative"}
	}
	if l.Deposit < 0 {
		return &ValidationError{Field: "deposit", Reason: "must not be negative"}
	}
	return nil
}

func DefaultLease() Lease {
	return Lease{
		ID:           "l1",
		TenantID:     "1",
		TenantName:   "Alex Rivera",
		UnitID:       "u101",
		UnitName:     "Penthouse A-1",
		PropertyID:   "3",
		PropertyName: "Harbor View Apartments",
		StartDate:    "2023-01-15",
		EndDate:      "2025-01-15",
		MonthlyRent:  3450,
		Deposit:      6900,
		Status:       LeaseStatusActive,
	}
}
