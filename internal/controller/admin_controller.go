package controller

import (
	"errors"

	"barplexity-be/internal/pkg/serverutils"
	"barplexity-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListUsers(ctx *fiber.Ctx) error
	ToggleBlock(ctx *fiber.Ctx) error
	BanUser(ctx *fiber.Ctx) error
}

type adminController struct {
	service    service.IAdminService
	middleware *serverutils.AuthMiddleware
}

func NewAdminController(service service.IAdminService, middleware *serverutils.AuthMiddleware) IAdminController {
	return &adminController{
		service:    service,
		middleware: middleware,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", c.middleware.RequireAdmin)
	h.Get("/users", c.ListUsers)
	h.Post("/users/:id/block", c.ToggleBlock)
	h.Delete("/users/:id", c.BanUser)
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)

	users, err := c.service.ListUsers(ctx.Context(), limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Users retrieved successfully", users))
}

func (c *adminController) ToggleBlock(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid user id"))
	}

	res, err := c.service.ToggleBlock(ctx.Context(), userId)
	if err != nil {
		return mapAdminError(ctx, err)
	}

	message := "User unblocked successfully"
	if res.Blocked {
		message = "User blocked successfully"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *adminController) BanUser(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid user id"))
	}

	if err := c.service.BanUser(ctx.Context(), userId); err != nil {
		return mapAdminError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User banned and removed successfully", nil))
}

func mapAdminError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, service.ErrAdminImmutable):
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
