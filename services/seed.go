package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"propdesk/models"
	"propdesk/storage"
)

// SeedService fills empty fallback buckets with demo data so the
// console is usable with no backend at all (development, demos).
type SeedService struct {
	local storage.FallbackStore
}

func NewSeedService(local storage.FallbackStore) *SeedService {
	return &SeedService{local: local}
}

// Seed writes demo data into every empty bucket. With force set,
// existing buckets are overwritten too.
func (s *SeedService) Seed(force bool) error {
	seeds := map[string]interface{}{
		storage.BucketProperties: seedProperties(),
		storage.BucketUnits:      seedUnits(),
		storage.BucketTenants:    seedTenants(),
		storage.BucketLeases:     seedLeases(),
		storage.BucketUsers:      seedUsers(),
	}

	for bucket, records := range seeds {
		if !force {
			existing, err := s.local.ReadBucket(bucket)
			if err != nil {
				return fmt.Errorf("read bucket %s: %w", bucket, err)
			}
			if existing != nil {
				log.Printf("Seed: bucket %s already populated, skipping", bucket)
				continue
			}
		}

		payload, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", bucket, err)
		}
		if err := s.local.WriteBucket(bucket, payload); err != nil {
			return fmt.Errorf("write bucket %s: %w", bucket, err)
		}
		log.Printf("Seed: wrote bucket %s", bucket)
	}

	return nil
}

// The first record of each bucket matches the entity's synthetic
// default, so by-id fallback lookups resolve to the same data the
// placeholder path would produce.

func seedProperties() []models.Property {
	harborView := models.DefaultProperty()
	harborView.Tenants = seedTenants()
	harborView.Units = seedUnits()

	return []models.Property{
		harborView,
		{
			ID:          uuid.NewString(),
			Name:        "Maple Grove Residences",
			Address:     "48 Orchard Lane",
			City:        "Portland",
			State:       "OR",
			Country:     "United States",
			PostCode:    "97204",
			Status:      models.PropertyStatusRenovation,
			Size:        8200,
			MonthlyRent: 18500,
			Description: "Mid-rise residential building undergoing lobby renovation.",
			RentalMode:  models.RentalModeLongTerm,
			MaxUnits:    12,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fulton Street Commerce Center",
			Address:     "900 Fulton St",
			City:        "Chicago",
			State:       "IL",
			Country:     "United States",
			PostCode:    "60607",
			Status:      models.PropertyStatusPending,
			Size:        32000,
			MonthlyRent: 76000,
			Description: "Multi-tenant commercial complex near the market district.",
			RentalMode:  models.RentalModeCommercial,
			MaxUnits:    40,
		},
	}
}

func seedUnits() []models.Unit {
	penthouse := models.DefaultUnit()
	penthouse.Tenants = []models.Tenant{models.DefaultTenant()}

	return []models.Unit{
		penthouse,
		{
			ID:         uuid.NewString(),
			Name:       "Garden Suite B-2",
			Number:     102,
			Status:     models.UnitStatusVacant,
			Price:      2150,
			PropertyID: penthouse.PropertyID,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Loft C-3",
			Number:     103,
			Status:     models.UnitStatusMaintenance,
			Price:      2675,
			PropertyID: penthouse.PropertyID,
		},
	}
}

func seedTenants() []models.Tenant {
	return []models.Tenant{
		models.DefaultTenant(),
		{
			ID:         "2",
			FullName:   "Priya Subramanian",
			Email:      "priya.s@example.com",
			Phone:      "(312) 555-0187",
			LeaseStart: "2024-06-01",
			LeaseEnd:   "2026-06-01",
			RentAmount: 2150,
			Status:     models.TenantStatusPending,
		},
		{
			ID:         uuid.NewString(),
			FullName:   "Marcus Webb",
			Email:      "marcus.w@example.com",
			Phone:      "(503) 555-0142",
			LeaseStart: "2021-03-01",
			LeaseEnd:   "2023-03-01",
			RentAmount: 1890,
			Status:     models.TenantStatusPast,
		},
	}
}

func seedLeases() []models.Lease {
	return []models.Lease{
		models.DefaultLease(),
		{
			// Whole-property lease: no unit reference.
			ID:           uuid.NewString(),
			TenantID:     "2",
			TenantName:   "Priya Subramanian",
			PropertyID:   "3",
			PropertyName: "Harbor View Apartments",
			StartDate:    "2024-06-01",
			EndDate:      "2026-06-01",
			MonthlyRent:  45000,
			Deposit:      90000,
			Status:       models.LeaseStatusPending,
		},
	}
}

func seedUsers() []models.AppUser {
	return []models.AppUser{
		models.DefaultAppUser(),
		{
			ID:        uuid.NewString(),
			FirstName: "Sofia",
			LastName:  "Almeida",
			Email:     "sofia.a@example.com",
			Role:      models.RoleAdmin,
			Status:    models.UserStatusActive,
			LastLogin: "Yesterday",
		},
		{
			ID:        uuid.NewString(),
			FirstName: "Devon",
			LastName:  "Clarke",
			Email:     "devon.c@example.com",
			Role:      models.RoleViewer,
			Status:    models.UserStatusInactive,
			LastLogin: "3 weeks ago",
		},
	}
}
