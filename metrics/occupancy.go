package metrics

import "propdesk/models"

// OccupancyRate expresses occupied over capacity as a percentage. Zero
// or negative capacity yields 0 rather than a division artifact.
func OccupancyRate(occupied, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(occupied) / float64(capacity) * 100
}

// PropertyOccupancy derives a property's occupancy from its embedded
// tenant snapshots and unit capacity.
func PropertyOccupancy(p *models.Property) float64 {
	return OccupancyRate(len(p.Tenants), p.MaxUnits)
}
