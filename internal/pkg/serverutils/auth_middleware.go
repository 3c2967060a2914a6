package serverutils

import (
	"strings"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// NewAuthMiddleware resolves the bearer token to a stored user. Missing,
// malformed and expired tokens all get the same 401.
func NewAuthMiddleware(auth service.IAuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(ctx)
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := auth.ResolveUser(ctx.Context(), tokenStr)
		if err != nil {
			return unauthorized(ctx)
		}

		ctx.Locals(currentUserKey, user)
		return ctx.Next()
	}
}

func unauthorized(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": service.ErrUnauthenticated.Error(),
	})
}

// CurrentUser returns the user resolved by the auth middleware.
func CurrentUser(ctx *fiber.Ctx) *entity.User {
	user, _ := ctx.Locals(currentUserKey).(*entity.User)
	return user
}
