package middleware

import (
	"context"
	"net/http"
	"strings"
)

// UnknownIdentity используется, когда клиент не передал адресных заголовков
const UnknownIdentity = "unknown"

type identityKey struct{}

// RequesterIdentity вычисляет идентификатор клиента по сетевым заголовкам
// и кладёт его в контекст запроса.
// Порядок: первый адрес X-Forwarded-For, затем X-Real-IP, иначе "unknown".
func RequesterIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), identityKey{}, identityFromHeaders(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFromHeaders(h http.Header) string {
	if forwarded := h.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(h.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	return UnknownIdentity
}

// IdentityFromContext извлекает идентификатор клиента из контекста
func IdentityFromContext(ctx context.Context) string {
	identity, ok := ctx.Value(identityKey{}).(string)
	if !ok || identity == "" {
		return UnknownIdentity
	}
	return identity
}
