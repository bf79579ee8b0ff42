package metrics

import (
	"testing"

	"propdesk/models"
)

func TestOccupancyRate(t *testing.T) {
	if got := OccupancyRate(0, 24); got != 0 {
		t.Fatalf("expected 0 for an empty property, got %v", got)
	}
	if got := OccupancyRate(24, 24); got != 100 {
		t.Fatalf("expected 100 for a full property, got %v", got)
	}
	if got := OccupancyRate(18, 24); got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}
	if got := OccupancyRate(5, 0); got != 0 {
		t.Fatalf("expected 0 for zero capacity, got %v", got)
	}
	if got := OccupancyRate(5, -1); got != 0 {
		t.Fatalf("expected 0 for negative capacity, got %v", got)
	}
}

func TestPropertyOccupancy(t *testing.T) {
	p := models.DefaultProperty()
	p.MaxUnits = 4
	p.Tenants = make([]models.Tenant, 3)

	if got := PropertyOccupancy(&p); got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}

	p.MaxUnits = 0
	if got := PropertyOccupancy(&p); got != 0 {
		t.Fatalf("expected 0 for zero capacity, got %v", got)
	}
}
