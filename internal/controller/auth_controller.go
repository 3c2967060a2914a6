package controller

import (
	"errors"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Token(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	validate *validator.Validate
}

func NewAuthController(service service.IAuthService, validate *validator.Validate) IAuthController {
	return &authController{service: service, validate: validate}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/signup", c.Signup)
	r.Post("/token", c.Token)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "username and password are required",
		})
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to create user",
		})
	}

	return ctx.JSON(res)
}

// Token handles the OAuth2-style password login. Bad credentials get a 401
// with a WWW-Authenticate challenge, never a hint about which field failed.
func (c *authController) Token(ctx *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}
	if err := c.validate.Struct(&req); err != nil {
		ctx.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": service.ErrInvalidCredentials.Error(),
		})
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		ctx.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": service.ErrInvalidCredentials.Error(),
		})
	}

	return ctx.JSON(res)
}
