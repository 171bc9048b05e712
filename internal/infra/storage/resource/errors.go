package resource

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resource.repository: resource not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("resource.repository: failed to scan row")

	// ErrEncodeRuleSet возвращается при ошибке сериализации правил доступности
	ErrEncodeRuleSet = errors.New("resource.repository: failed to encode rule set")

	// ErrDecodeRuleSet возвращается при ошибке разбора правил доступности из БД
	ErrDecodeRuleSet = errors.New("resource.repository: failed to decode rule set")
)
