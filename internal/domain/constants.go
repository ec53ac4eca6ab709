package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinNumberOfPeople        = 1
	MaxNumberOfPeople        = 50
	MaxStayNights            = 90
	MaxSpecialRequestsLength = 1000
	MaxCancellationReasonLen = 500
)

// CountedStatuses список статусов, при которых бронирование занимает инвентарь.
// Используется во всех запросах подсчёта занятости.
var CountedStatuses = []BookingStatus{
	StatusBooked,
	StatusConfirmed,
	StatusCompleted,
}

// CancellableStatuses список статусов, из которых допустима отмена.
// Терминальные статусы отменить нельзя.
var CancellableStatuses = []BookingStatus{
	StatusDraft,
	StatusBooked,
	StatusConfirmed,
}

// TerminalStatuses список терминальных статусов бронирования
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusDraft,
	StatusBooked,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
