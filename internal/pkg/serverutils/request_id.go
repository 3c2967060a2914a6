package serverutils

import (
	"legal-assistant-be/internal/pkg/requestctx"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags every request with a correlation id, echoed in the response
// header and available to services via the request context.
func RequestID() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := uuid.NewString()
		ctx.Set("X-Request-Id", id)
		ctx.SetUserContext(requestctx.WithRequestID(ctx.UserContext(), id))
		return ctx.Next()
	}
}
