package allocate_assignment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocate_assignment: invalid input data")

	// ErrInvalidWindow возвращается при пустом или инвертированном окне (end <= start)
	// Терминальная ошибка - повтор без изменения входных данных бессмысленен
	ErrInvalidWindow = errors.New("allocate_assignment: invalid window")

	// ErrInvalidParticipantCount возвращается при participantCount < 1
	ErrInvalidParticipantCount = errors.New("allocate_assignment: participant count must be >= 1")

	// ErrInvalidRole возвращается при неизвестной роли назначения
	ErrInvalidRole = errors.New("allocate_assignment: invalid assignment role")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("allocate_assignment: resource not found")

	// ErrResourceMisconfigured возвращается при ошибке конфигурации ресурса
	// (нулевая вместимость, неизвестная таймзона, некорректные правила)
	ErrResourceMisconfigured = errors.New("allocate_assignment: resource misconfigured")

	// ErrResourceClosed возвращается, когда окно не попадает целиком
	// в открытые интервалы ресурса
	ErrResourceClosed = errors.New("allocate_assignment: resource closed for requested window")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("allocate_assignment: booking not found")

	// ErrBookingNotActive возвращается, когда бронирование отменено
	// или его hold истёк - такие бронирования не могут получать назначения
	ErrBookingNotActive = errors.New("allocate_assignment: booking is not active")

	// ErrCapacityExceeded возвращается, когда запрошенное количество участников
	// не помещается в оставшуюся вместимость ресурса
	ErrCapacityExceeded = errors.New("allocate_assignment: capacity exceeded")

	// ErrConcurrentConflict возвращается, когда конкурентная аллокация успела
	// первой (отказ сериализации или заполнение вместимости между проверками).
	// Единственная ошибка, которую вызывающему имеет смысл повторить;
	// usecase сам повторов не делает, чтобы не прятать contention от вызывающего
	ErrConcurrentConflict = errors.New("allocate_assignment: concurrent allocation conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_assignment: internal error")
)
