package customerservice

// Customer модель клиента из CustomerService
type Customer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// IsBlocked проверяет, что клиенту запрещено бронировать
func (c *Customer) IsBlocked() bool {
	return c.Status == "blocked"
}
