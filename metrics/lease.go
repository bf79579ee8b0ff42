// Package metrics computes display-only values derived from entity
// fields. Everything here is a pure function; nothing is persisted.
package metrics

import (
	"math"
	"time"

	"propdesk/models"
)

// DateLayout is the wire form of entity dates.
const DateLayout = "2006-01-02"

// Escalation is a configured annual rent increase, applied after the
// first 12 months of the term.
type Escalation struct {
	Enabled    bool
	AnnualRate float64 // percent, e.g. 3.5
}

// MonthsBetween returns the calendar-month difference between two
// dates: (endYear-startYear)*12 + (endMonth-startMonth). Days are
// ignored, and the result is negative when end precedes start.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// LeaseProgress returns how far through its term a lease is at the
// given instant, as an integer percentage clamped to [0,100].
//
// A degenerate term (end before or equal to start) has no duration to
// measure against: the lease counts as not started before the start
// instant and fully elapsed from the start instant on.
func LeaseProgress(start, end, now time.Time) int {
	if !end.After(start) {
		if now.Before(start) {
			return 0
		}
		return 100
	}

	total := end.Sub(start)
	elapsed := now.Sub(start)
	pct := int(math.Round(float64(elapsed) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ContractValue is the total value of a lease term: calendar months
// times monthly rent, floored at zero months. With escalation enabled,
// every month beyond the twelfth additionally earns the configured
// percentage of the monthly rent.
func ContractValue(start, end time.Time, monthlyRent float64, esc Escalation) float64 {
	months := MonthsBetween(start, end)
	if months < 0 {
		months = 0
	}

	value := float64(months) * monthlyRent
	if esc.Enabled && months > 12 {
		value += monthlyRent * (esc.AnnualRate / 100) * float64(months-12)
	}
	return value
}

// LeaseProgressAt parses the lease's term dates and evaluates
// LeaseProgress at now.
func LeaseProgressAt(l *models.Lease, now time.Time) (int, error) {
	start, err := time.Parse(DateLayout, l.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse(DateLayout, l.EndDate)
	if err != nil {
		return 0, err
	}
	return LeaseProgress(start, end, now), nil
}

// LeaseContractValue parses the lease's term dates and computes its
// total contract value.
func LeaseContractValue(l *models.Lease, esc Escalation) (float64, error) {
	start, err := time.Parse(DateLayout, l.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse(DateLayout, l.EndDate)
	if err != nil {
		return 0, err
	}
	return ContractValue(start, end, l.MonthlyRent, esc), nil
}
