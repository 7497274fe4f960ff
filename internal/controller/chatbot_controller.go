package controller

import (
	"errors"

	"barplexity-be/internal/dto"
	"barplexity-be/internal/pkg/serverutils"
	"barplexity-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service    service.IChatbotService
	middleware *serverutils.AuthMiddleware
}

func NewChatbotController(service service.IChatbotService, middleware *serverutils.AuthMiddleware) IChatbotController {
	return &chatbotController{
		service:    service,
		middleware: middleware,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot", c.middleware.RequireUser)
	h.Post("/sessions", c.CreateSession)
	h.Get("/sessions", c.ListSessions)
	h.Get("/sessions/:id", c.GetSession)
	h.Delete("/sessions/:id", c.DeleteSession)
	h.Post("/chat", c.SendChat)
}

func (c *chatbotController) CreateSession(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.service.CreateSession(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat session created successfully", res))
}

func (c *chatbotController) ListSessions(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.service.ListSessions(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat sessions retrieved successfully", res))
}

func (c *chatbotController) GetSession(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(uuid.UUID)
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	res, err := c.service.GetSession(ctx.Context(), userId, sessionId)
	if err != nil {
		return mapChatbotError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat session retrieved successfully", res))
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(uuid.UUID)
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid session id"))
	}

	if err := c.service.DeleteSession(ctx.Context(), userId, sessionId); err != nil {
		return mapChatbotError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Chat session deleted successfully", nil))
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(uuid.UUID)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SendChat(ctx.Context(), userId, &req)
	if err != nil {
		return mapChatbotError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Message sent successfully", res))
}

func mapChatbotError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrChatSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, service.ErrChatSessionForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
