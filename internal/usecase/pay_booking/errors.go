package pay_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("pay_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бронирования
	ErrAccessDenied = errors.New("pay_booking: access denied")

	// ErrInvalidTransition возвращается при оплате не-draft бронирования
	ErrInvalidTransition = errors.New("pay_booking: booking is not payable in its current status")

	// ErrCapacityExceeded возвращается, когда к моменту оплаты вместимость
	// уже разобрана. Бронирование остается draft/unpaid.
	ErrCapacityExceeded = errors.New("pay_booking: not enough capacity for requested dates")

	// ErrStaleQuote возвращается, когда цена каталога разошлась со снапшотом
	// черновика. Пользователь должен пересоздать или обновить черновик.
	ErrStaleQuote = errors.New("pay_booking: price quote is stale")

	// ErrResourceNotFound возвращается, когда ресурс маршрута исчез из каталога
	ErrResourceNotFound = errors.New("pay_booking: resource not found")

	// ErrResourceInactive возвращается, когда ресурс отключен администратором
	ErrResourceInactive = errors.New("pay_booking: resource is inactive")

	// ErrPaymentVerificationFailed возвращается, когда шлюз не подтвердил платеж:
	// подпись не сошлась, платеж не найден, не захвачен или сумма не совпала
	ErrPaymentVerificationFailed = errors.New("pay_booking: payment verification failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pay_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("pay_booking: internal error")
)
