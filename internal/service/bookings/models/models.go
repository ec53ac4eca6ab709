package models

import (
	"errors"
	"time"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// Actor инициатор операции: владелец бронирования или администратор
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Actor              Actor
	CancellationReason string
}

// UpdateStatusRequest запрос на административный переход статуса
// (booked → confirmed, confirmed → completed)
type UpdateStatusRequest struct {
	Actor  Actor
	Status string
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	Actor  Actor
	UserID int64
	Status *string
}

// Response модели

// PricingResponse декомпозированная цена маршрута
type PricingResponse struct {
	StayTotal            int64 `json:"stayTotal"`
	TransportationTotal  int64 `json:"transportationTotal"`
	SightseeingTotal     int64 `json:"sightseeingTotal"`
	AirportTransferTotal int64 `json:"airportTransferTotal"`
	GrandTotal           int64 `json:"grandTotal"`
}

// TransferSelectionResponse выбранная машина трансфера
type TransferSelectionResponse struct {
	VehicleID int64 `json:"vehicleId"`
	Count     int   `json:"count"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	StayID           int64                       `json:"stayId"`
	TransportationID int64                       `json:"transportationId"`
	ActivityIDs      []int64                     `json:"activityIds"`
	Transfers        []TransferSelectionResponse `json:"transfers,omitempty"`

	CheckInDate    string `json:"checkInDate"`  // "2025-10-15"
	CheckOutDate   string `json:"checkOutDate"` // полуоткрытый диапазон, день выезда
	NumberOfPeople int    `json:"numberOfPeople"`
	NumberOfDays   int    `json:"numberOfDays"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	Pricing PricingResponse `json:"pricing"`

	SpecialRequests *string `json:"specialRequests,omitempty"`
	PaymentRef      *string `json:"paymentRef,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		StayID:           b.StayID,
		TransportationID: b.TransportationID,
		ActivityIDs:      b.ActivityIDs,
		CheckInDate:      b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     b.CheckOutDate.Format(domain.DateFormat),
		NumberOfPeople:   b.NumberOfPeople,
		NumberOfDays:     b.NumberOfDays,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		Pricing: PricingResponse{
			StayTotal:            b.Pricing.StayTotal,
			TransportationTotal:  b.Pricing.TransportationTotal,
			SightseeingTotal:     b.Pricing.SightseeingTotal,
			AirportTransferTotal: b.Pricing.AirportTransferTotal,
			GrandTotal:           b.Pricing.GrandTotal,
		},
		SpecialRequests:    b.SpecialRequests,
		PaymentRef:         b.PaymentRef,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	for _, sel := range b.Transfers {
		resp.Transfers = append(resp.Transfers, TransferSelectionResponse{
			VehicleID: sel.VehicleID,
			Count:     sel.Count,
		})
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
