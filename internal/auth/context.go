package auth

import "context"

type contextKey string

const claimsKey contextKey = "claims"

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func ClaimsFrom(ctx context.Context) *Claims {
	if c, _ := ctx.Value(claimsKey).(*Claims); c != nil {
		return c
	}
	return nil
}

// UserIDFrom retorna o id do usuário autenticado, ou 0 se não houver claims.
func UserIDFrom(ctx context.Context) int {
	c := ClaimsFrom(ctx)
	if c == nil {
		return 0
	}
	return c.UserID
}

func RoleFrom(ctx context.Context) string {
	c := ClaimsFrom(ctx)
	if c == nil {
		return ""
	}
	return c.Role
}

func IsAdmin(ctx context.Context) bool {
	return RoleFrom(ctx) == RoleAdmin
}
