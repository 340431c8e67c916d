package entity

import "time"

// PackageStatus enumerates the delivery states of a package.
type PackageStatus string

const (
	PackageStatusPending   PackageStatus = "pending"
	PackageStatusDelivered PackageStatus = "delivered"
	PackageStatusCancelled PackageStatus = "cancelled"
)

// IsValid reports whether the status is one of the known delivery states.
func (s PackageStatus) IsValid() bool {
	switch s {
	case PackageStatusPending, PackageStatusDelivered, PackageStatusCancelled:
		return true
	}

	return false
}

// Package represents a single delivery record.
type Package struct {
	ID        int64         // Auto-incrementing primary key.
	Address   string        // Destination address.
	Owner     string        // Name of the package owner.
	Weight    int           // Weight in grams; always positive.
	Status    PackageStatus // Current delivery state; defaults to pending.
	Date      time.Time     // Scheduled delivery date.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo reports whether the package may move to the target status.
// Delivered and cancelled are terminal states.
func (p *Package) CanTransitionTo(target PackageStatus) bool {
	if !target.IsValid() {
		return false
	}

	return p.Status == PackageStatusPending && target != PackageStatusPending
}
