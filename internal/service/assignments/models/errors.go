package models

import "errors"

// ErrInvalidDateRange возвращается при инвертированном диапазоне дат фильтра
var ErrInvalidDateRange = errors.New("assignments.models: invalid date range")
