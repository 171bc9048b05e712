package ledger

import "errors"

var (
	// ErrInvalidWindow возвращается при пустом или инвертированном окне
	ErrInvalidWindow = errors.New("ledger: invalid window")

	// ErrInternal возвращается при внутренних ошибках леджера
	ErrInternal = errors.New("ledger: internal error")
)
