package razorpay

import "errors"

var (
	// ErrSignatureMismatch возвращается, когда подпись платежа не прошла проверку
	ErrSignatureMismatch = errors.New("razorpay client: payment signature mismatch")

	// ErrPaymentNotFound возвращается, когда платеж не найден на стороне шлюза
	ErrPaymentNotFound = errors.New("razorpay client: payment not found")

	// ErrPaymentNotCaptured возвращается, когда платеж существует, но не захвачен
	ErrPaymentNotCaptured = errors.New("razorpay client: payment is not captured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("razorpay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("razorpay client: invalid response")
)
