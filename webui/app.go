package webui

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/mindling-ai/mindling/core/state"
	"github.com/mindling-ai/mindling/pkg/xlog"
)

// App exposes the conversation pool over HTTP: one line of text in,
// one line of text out per chat call.
type App struct {
	*fiber.App
	pool *state.ConversationPool
}

func NewApp(pool *state.ConversationPool) *App {
	webapp := fiber.New(fiber.Config{
		AppName:               "mindling",
		DisableStartupMessage: true,
	})

	a := &App{App: webapp, pool: pool}
	a.registerRoutes()
	return a
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (a *App) registerRoutes() {
	api := a.Group("/api")

	api.Post("/conversations", func(c *fiber.Ctx) error {
		id, err := a.pool.Create()
		if err != nil {
			xlog.Error("Failed to create conversation", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not create conversation"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	})

	api.Get("/conversations", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ids": a.pool.IDs()})
	})

	api.Post("/conversations/:id/chat", func(c *fiber.Ctx) error {
		req := chatRequest{}
		if err := c.BodyParser(&req); err != nil || req.Message == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
		}

		response, err := a.pool.Chat(c.Params("id"), req.Message)
		if err != nil {
			return conversationError(c, err)
		}
		return c.JSON(chatResponse{Response: response})
	})

	api.Get("/conversations/:id/state", func(c *fiber.Ctx) error {
		snapshot, err := a.pool.State(c.Params("id"))
		if err != nil {
			return conversationError(c, err)
		}
		return c.JSON(snapshot)
	})

	api.Delete("/conversations/:id", func(c *fiber.Ctx) error {
		if !a.pool.Remove(c.Params("id")) {
			return conversationError(c, state.ErrConversationNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func conversationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, state.ErrConversationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	xlog.Error("Conversation request failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
