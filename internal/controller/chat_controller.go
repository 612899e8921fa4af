package controller

import (
	"mindmate-be/internal/dto"
	"mindmate-be/internal/pkg/serverutils"
	"mindmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Analysis(ctx *fiber.Ctx) error
	Snapshot(ctx *fiber.Ctx) error
}

type chatController struct {
	service  service.IChatService
	snapshot service.ISnapshotService
}

func NewChatController(service service.IChatService, snapshot service.ISnapshotService) IChatController {
	return &chatController{service: service, snapshot: snapshot}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat", serverutils.JwtMiddleware)
	h.Post("/", c.SendMessage)
	h.Get("/history", c.History)

	m := r.Group("/mental-health", serverutils.JwtMiddleware)
	m.Get("/analysis", c.Analysis)
	m.Get("/snapshot", c.Snapshot)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Message processed", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.History(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Chat history retrieved", res))
}

func (c *chatController) Analysis(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.Analysis(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Analysis computed", res))
}

func (c *chatController) Snapshot(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.snapshot.Snapshot(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Snapshot retrieved", res))
}
