package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type ctxKey string

const customerIDKey ctxKey = "customerID"

// HeaderCustomerID заголовок, через который gateway передаёт
// аутентифицированного клиента
const HeaderCustomerID = "X-Customer-ID"

// Auth извлекает ID клиента из заголовка и кладёт его в контекст
// Сама аутентификация выполняется на gateway, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderCustomerID)
		if header != "" {
			if customerID, err := strconv.ParseInt(header, 10, 64); err == nil {
				ctx := context.WithValue(r.Context(), customerIDKey, customerID)
				r = r.WithContext(ctx)
			}
		}

		next.ServeHTTP(w, r)
	})
}

// GetCustomerID возвращает ID клиента из контекста
func GetCustomerID(ctx context.Context) (int64, bool) {
	customerID, ok := ctx.Value(customerIDKey).(int64)
	return customerID, ok
}
