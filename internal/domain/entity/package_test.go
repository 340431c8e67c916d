package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageStatusIsValid(t *testing.T) {
	assert.True(t, PackageStatusPending.IsValid())
	assert.True(t, PackageStatusDelivered.IsValid())
	assert.True(t, PackageStatusCancelled.IsValid())
	assert.False(t, PackageStatus("lost").IsValid())
	assert.False(t, PackageStatus("").IsValid())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from PackageStatus
		to   PackageStatus
		want bool
	}{
		{name: "pending to delivered", from: PackageStatusPending, to: PackageStatusDelivered, want: true},
		{name: "pending to cancelled", from: PackageStatusPending, to: PackageStatusCancelled, want: true},
		{name: "pending to pending", from: PackageStatusPending, to: PackageStatusPending, want: false},
		{name: "delivered is terminal", from: PackageStatusDelivered, to: PackageStatusCancelled, want: false},
		{name: "cancelled is terminal", from: PackageStatusCancelled, to: PackageStatusDelivered, want: false},
		{name: "unknown target", from: PackageStatusPending, to: PackageStatus("lost"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &Package{Status: tt.from}
			assert.Equal(t, tt.want, pkg.CanTransitionTo(tt.to))
		})
	}
}
