package handlers

import (
	"food-journal-backend/domain"
	"food-journal-backend/internal/api/presenters"
	"food-journal-backend/pkg/quiz"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	QuizHandler interface {
		GetQuestions(c *fiber.Ctx) error
		SubmitQuiz(c *fiber.Ctx) error
		GetLatestResult(c *fiber.Ctx) error
	}

	quizHandler struct {
		quizService quiz.QuizService
		validator   *validator.Validate
	}
)

func NewQuizHandler(quizService quiz.QuizService, validator *validator.Validate) QuizHandler {
	return &quizHandler{
		quizService: quizService,
		validator:   validator,
	}
}

func (h *quizHandler) GetQuestions(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"questions": quiz.QuizQuestions,
	}, fiber.StatusOK, domain.MessageSuccessGetQuizResult)
}

func (h *quizHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.QuizSubmissionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitQuiz, err)
	}

	res, err := h.quizService.SubmitQuiz(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitQuiz, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitQuiz)
}

func (h *quizHandler) GetLatestResult(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.quizService.GetLatestResult(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetQuizResult, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetQuizResult)
}
