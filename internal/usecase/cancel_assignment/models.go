package cancel_assignment

// Request входные данные отмены назначения
type Request struct {
	AssignmentID int64
}

// Response результат отмены
// AlreadyCancelled - информационный признак: назначение уже было отменено
// (или не существует), состояние не менялось. Это не ошибка
type Response struct {
	AssignmentID     int64
	AlreadyCancelled bool
}
