package controller

import (
	"legal-assistant-be/internal/pkg/serverutils"
	"legal-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	List(ctx *fiber.Ctx) error
}

type historyController struct {
	service service.IHistoryService
}

func NewHistoryController(service service.IHistoryService) IHistoryController {
	return &historyController{service: service}
}

func (c *historyController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/history", authRequired, c.List)
}

func (c *historyController) List(ctx *fiber.Ctx) error {
	owner := serverutils.CurrentUser(ctx)

	items, err := c.service.ListForUser(ctx.UserContext(), owner.Id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to load history",
		})
	}

	return ctx.JSON(items)
}
