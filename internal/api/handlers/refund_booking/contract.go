package refund_booking

import (
	"context"

	"github.com/m04kA/TRV-BookingEngine/internal/service/bookings/models"
)

type BookingService interface {
	Refund(ctx context.Context, bookingID int64, actor models.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
