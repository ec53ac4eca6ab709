package early_checkout

import (
	"context"

	earlyCheckout "github.com/m04kA/TRV-BookingEngine/internal/usecase/early_checkout"
)

type EarlyCheckoutUseCase interface {
	Execute(ctx context.Context, req *earlyCheckout.Request) (*earlyCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
