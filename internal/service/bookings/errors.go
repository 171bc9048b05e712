package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerBlocked возвращается, когда клиенту запрещено бронировать
	ErrCustomerBlocked = errors.New("customer is blocked")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrHoldExpired возвращается при попытке подтвердить черновик
	// с истёкшим hold
	ErrHoldExpired = errors.New("draft hold expired")

	// ErrNotDraft возвращается при попытке подтвердить бронирование
	// не в статусе draft
	ErrNotDraft = errors.New("booking is not a draft")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
