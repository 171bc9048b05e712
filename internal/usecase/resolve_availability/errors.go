package resolve_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_availability: invalid input data")

	// ErrInvalidRange возвращается при пустом, инвертированном
	// или слишком длинном диапазоне дат
	ErrInvalidRange = errors.New("resolve_availability: invalid date range")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resolve_availability: resource not found")

	// ErrResourceMisconfigured возвращается при ошибке конфигурации ресурса
	ErrResourceMisconfigured = errors.New("resolve_availability: resource misconfigured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_availability: internal error")
)
