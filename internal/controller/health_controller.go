package controller

import (
	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
}

type healthController struct{}

func NewHealthController() IHealthController {
	return &healthController{}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
}

func (c *healthController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "Welcome to the Legal Assistant API!",
	})
}
