package domain

import (
	"time"

	"github.com/m04kA/TRV-BookingEngine/pkg/types"
)

// ResourceType kind of bookable catalog item
type ResourceType string

const (
	ResourceStay            ResourceType = "stay"
	ResourceTransportation  ResourceType = "transportation"
	ResourceSightseeing     ResourceType = "sightseeing"
	ResourceTransferVehicle ResourceType = "transfer_vehicle"
)

// Resource is a bookable catalog item: a stay, a transportation unit,
// a sightseeing activity or an airport-transfer vehicle.
// Owned and mutated by the admin catalog; the engine only reads it.
type Resource struct {
	ID       int64
	Type     ResourceType
	Name     string
	Capacity int // rooms, fleet units or per-day slot count

	// MaxOccupancy caps party size per room for stays (0 = no cap)
	MaxOccupancy int

	// Type-specific pricing, integer currency units
	PricePerNight  int64 // stays
	PricePerDay    int64 // transportation
	PricePerPerson int64 // sightseeing
	Price          int64 // transfer vehicles, flat

	// UnavailableDates is the admin-curated blocklist, calendar-day granularity
	UnavailableDates []types.DateString

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlockedOn returns true if the given calendar day is in the admin blocklist
func (r *Resource) IsBlockedOn(day types.DateString) bool {
	for _, blocked := range r.UnavailableDates {
		if blocked == day {
			return true
		}
	}
	return false
}

// UsageUnits returns how many capacity units a booking request consumes
// per day for this resource type: one room-night for stays, one vehicle-day
// for transportation, party size against the slot pool for sightseeing and
// the vehicle count for transfers.
func (r *Resource) UsageUnits(partySize, vehicleCount int) int {
	switch r.Type {
	case ResourceSightseeing:
		return partySize
	case ResourceTransferVehicle:
		return vehicleCount
	default:
		return 1
	}
}
