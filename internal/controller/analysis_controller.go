package controller

import (
	"errors"
	"strings"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/pkg/serverutils"
	"legal-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router, authRequired fiber.Handler)
	AnalyzeText(ctx *fiber.Ctx) error
}

type analysisController struct {
	service service.IAnalysisService
}

func NewAnalysisController(service service.IAnalysisService) IAnalysisController {
	return &analysisController{service: service}
}

func (c *analysisController) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Post("/analyze-text/", authRequired, c.AnalyzeText)
}

func (c *analysisController) AnalyzeText(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}
	if strings.TrimSpace(req.Text) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": service.ErrEmptyText.Error(),
		})
	}

	owner := serverutils.CurrentUser(ctx)

	res, err := c.service.Analyze(ctx.UserContext(), owner, req.Text)
	if err != nil {
		var upErr *service.UpstreamError
		if errors.As(err, &upErr) {
			// The diagnostic goes to the client for operability; it is not a
			// machine-readable contract.
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": upErr.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "analysis failed",
		})
	}

	return ctx.JSON(res)
}
