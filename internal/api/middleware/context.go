package middleware

import (
	"context"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

type principalKey struct{}

// WithPrincipal кладет пользователя в контекст
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// GetPrincipal достает пользователя, установленного middleware Auth
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}
