// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"time"

	"barplexity-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthMiddleware verifies bearer tokens and threads the authenticated
// identity through request locals, so handlers never consult ambient state.
type AuthMiddleware struct {
	secret  []byte
	revoked *memory.RevokedTokenStore
}

func NewAuthMiddleware(secret string, revoked *memory.RevokedTokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		secret:  []byte(secret),
		revoked: revoked,
	}
}

// authenticate validates the bearer token and populates user_id, role, token
// and token_exp locals. On failure it writes the 401 response itself and
// reports ok=false.
func (m *AuthMiddleware) authenticate(ctx *fiber.Ctx) (bool, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return false, ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
	}
	tokenStr := authHeader[7:]

	if m.revoked.IsRevoked(tokenStr) {
		return false, ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Token has been logged out"))
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return false, ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false, ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token claims"))
	}

	userIdStr, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return false, ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token claims"))
	}

	role, _ := claims["role"].(string)

	ctx.Locals("user_id", userId)
	ctx.Locals("role", role)
	ctx.Locals("token", tokenStr)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ctx.Locals("token_exp", exp.Time)
	} else {
		ctx.Locals("token_exp", time.Now())
	}

	return true, nil
}

// RequireUser accepts any authenticated, non-revoked token.
func (m *AuthMiddleware) RequireUser(ctx *fiber.Ctx) error {
	ok, err := m.authenticate(ctx)
	if !ok {
		return err
	}
	return ctx.Next()
}

// RequireAdmin re-checks the admin role on every request.
func (m *AuthMiddleware) RequireAdmin(ctx *fiber.Ctx) error {
	ok, err := m.authenticate(ctx)
	if !ok {
		return err
	}
	if role, _ := ctx.Locals("role").(string); role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
	}
	return ctx.Next()
}
