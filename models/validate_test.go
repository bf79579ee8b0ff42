package models

import "testing"

func TestLeaseValidate_UnitFieldsBothOrNeither(t *testing.T) {
	lease := DefaultLease()
	if err := lease.Validate(); err != nil {
		t.Fatalf("default lease should validate: %v", err)
	}

	lease.UnitID = ""
	if err := lease.Validate(); err == nil {
		t.Fatalf("expected error for unitName without unitId")
	}

	lease.UnitName = ""
	if err := lease.Validate(); err != nil {
		t.Fatalf("whole-property lease should validate: %v", err)
	}
	if !lease.WholeProperty() {
		t.Fatalf("expected whole-property lease")
	}
}

func TestLeaseValidate_Money(t *testing.T) {
	lease := DefaultLease()
	lease.Deposit = -1
	if err := lease.Validate(); err == nil {
		t.Fatalf("expected error for negative deposit")
	}

	lease = DefaultLease()
	lease.MonthlyRent = -100
	if err := lease.Validate(); err == nil {
		t.Fatalf("expected error for negative rent")
	}
}

func TestPropertyValidate_Occupancy(t *testing.T) {
	p := DefaultProperty()
	p.MaxUnits = 2
	p.Tenants = make([]Tenant, 2)
	if err := p.Validate(); err != nil {
		t.Fatalf("full property should validate: %v", err)
	}

	p.Tenants = make([]Tenant, 3)
	err := p.Validate()
	if err == nil {
		t.Fatalf("expected error when occupancy exceeds capacity")
	}
	if verr, ok := err.(*ValidationError); !ok || verr.Field != "tenants" {
		t.Fatalf("expected tenants validation error, got %v", err)
	}
}

func TestPatchValidate(t *testing.T) {
	neg := -5.0
	if err := (&TenantPatch{RentAmount: &neg}).Validate(); err == nil {
		t.Fatalf("expected error for negative rent amount")
	}

	status := TenantStatus("evicted")
	if err := (&TenantPatch{Status: &status}).Validate(); err == nil {
		t.Fatalf("expected error for unknown status")
	}

	zero := 0
	if err := (&PropertyPatch{MaxUnits: &zero}).Validate(); err == nil {
		t.Fatalf("expected error for zero maxUnits")
	}

	ok := TenantStatusPending
	if err := (&TenantPatch{Status: &ok}).Validate(); err != nil {
		t.Fatalf("valid patch rejected: %v", err)
	}
}
