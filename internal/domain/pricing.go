package domain

// PricingBreakdown is the decomposed price of a composed itinerary.
// All values are integer currency units; rounding happens only at
// presentation, never here.
type PricingBreakdown struct {
	StayTotal            int64
	TransportationTotal  int64
	SightseeingTotal     int64
	AirportTransferTotal int64
	GrandTotal           int64
}

// IsZero returns true if no component has been priced
func (p PricingBreakdown) IsZero() bool {
	return p.GrandTotal == 0 &&
		p.StayTotal == 0 &&
		p.TransportationTotal == 0 &&
		p.SightseeingTotal == 0 &&
		p.AirportTransferTotal == 0
}
