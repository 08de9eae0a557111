package handlers

import (
	"food-journal-backend/domain"
	"food-journal-backend/internal/api/presenters"
	"food-journal-backend/pkg/chat"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		GetWelcome(c *fiber.Ctx) error
		SendMessage(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

func (h *chatHandler) GetWelcome(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.ChatResponse{
		Role:    "assistant",
		Content: h.chatService.Welcome(),
	}, fiber.StatusOK, domain.MessageSuccessChatReply)
}

func (h *chatHandler) SendMessage(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChatReply, err)
	}

	return presenters.SuccessResponse(c, domain.ChatResponse{
		Role:    "assistant",
		Content: h.chatService.Reply(req.Message),
	}, fiber.StatusOK, domain.MessageSuccessChatReply)
}
