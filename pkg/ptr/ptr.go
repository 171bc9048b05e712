package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для передачи литералов в опциональные поля
func Ptr[T any](v T) *T {
	return &v
}
