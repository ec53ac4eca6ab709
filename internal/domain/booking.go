package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusDraft     BookingStatus = "draft"
	StatusBooked    BookingStatus = "booked"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// TransferSelection is a chosen airport-transfer vehicle with a unit count
type TransferSelection struct {
	VehicleID int64 `json:"vehicleId"`
	Count     int   `json:"count"`
}

// Booking represents a composed travel itinerary purchase.
// The date range is half-open: [CheckInDate, CheckOutDate), so a one-night
// stay has CheckOutDate = CheckInDate + 1 day.
type Booking struct {
	ID     int64
	UserID int64

	StayID           int64
	TransportationID int64
	ActivityIDs      []int64
	Transfers        []TransferSelection

	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfPeople int
	NumberOfDays   int

	Status        BookingStatus
	PaymentStatus PaymentStatus

	// Pricing snapshot, frozen when the booking leaves draft
	Pricing PricingBreakdown

	SpecialRequests *string
	PaymentRef      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsAgainstCapacity returns true if the booking consumes inventory.
// Drafts are non-binding quotes and never count; cancelled bookings have
// released whatever they held.
func (b *Booking) CountsAgainstCapacity() bool {
	return b.Status == StatusBooked || b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// IsDraft returns true while the booking is an editable, unpaid quote
func (b *Booking) IsDraft() bool {
	return b.Status == StatusDraft
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusDraft || b.Status == StatusBooked || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if dates/selection/party size may still change.
// A booked itinerary is immutable except via cancel or early checkout.
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusDraft
}

// CanBeShortened returns true if the booking is eligible for early checkout
func (b *Booking) CanBeShortened() bool {
	return b.Status == StatusBooked || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether moving to next is a legal status transition
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case StatusBooked:
		return b.Status == StatusDraft
	case StatusConfirmed:
		return b.Status == StatusBooked
	case StatusCompleted:
		return b.Status == StatusConfirmed
	case StatusCancelled:
		return b.CanBeCancelled()
	default:
		return false
	}
}

// CanBeRefunded returns true if the payment can move to refunded.
// Refund is a payment-status transition only and requires a cancelled booking.
func (b *Booking) CanBeRefunded() bool {
	return b.Status == StatusCancelled && b.PaymentStatus == PaymentPaid
}

// Nights returns the stay length in nights derived from the date range
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// CoversDay returns true if the half-open date range covers the given calendar day
func (b *Booking) CoversDay(day time.Time) bool {
	return !day.Before(b.CheckInDate) && day.Before(b.CheckOutDate)
}

// TransferCount returns the unit count selected for the given transfer vehicle
func (b *Booking) TransferCount(vehicleID int64) int {
	for _, sel := range b.Transfers {
		if sel.VehicleID == vehicleID {
			return sel.Count
		}
	}
	return 0
}

// HasActivity returns true if the itinerary includes the given activity
func (b *Booking) HasActivity(activityID int64) bool {
	for _, id := range b.ActivityIDs {
		if id == activityID {
			return true
		}
	}
	return false
}

// OverlapFilter selects bookings of counted statuses that overlap a date range
// for one constituent resource. Used by the availability checker.
type OverlapFilter struct {
	ResourceID       int64
	ResourceType     ResourceType
	RangeStart       time.Time // inclusive
	RangeEnd         time.Time // exclusive
	ExcludeBookingID *int64    // set when re-checking an existing booking
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	UserID int64
	Status *BookingStatus // опционально
}
