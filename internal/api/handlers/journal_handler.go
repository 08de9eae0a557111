package handlers

import (
	"food-journal-backend/domain"
	"food-journal-backend/internal/api/presenters"
	"food-journal-backend/pkg/journal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	JournalHandler interface {
		CreateEntry(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		GetEntryDetails(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		BulkDeleteEntries(c *fiber.Ctx) error
		ExportEntries(c *fiber.Ctx) error
		GenerateInsights(c *fiber.Ctx) error
	}

	journalHandler struct {
		journalService journal.JournalService
		validator      *validator.Validate
	}
)

func NewJournalHandler(journalService journal.JournalService, validator *validator.Validate) JournalHandler {
	return &journalHandler{
		journalService: journalService,
		validator:      validator,
	}
}

func (h *journalHandler) CreateEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEntry, err)
	}

	res, err := h.journalService.CreateEntry(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateEntry)
}

func (h *journalHandler) GetEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	query := c.Query("q")
	bucket := c.Query("range", journal.BucketAll)
	sortKey := c.Query("sort", journal.SortRecent)

	res, err := h.journalService.GetEntries(c.Context(), userID, query, bucket, sortKey)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *journalHandler) GetEntryDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	res, err := h.journalService.GetEntryByID(c.Context(), entryID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEntryDetail)
}

func (h *journalHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.journalService.DeleteEntry(c.Context(), entryID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}

func (h *journalHandler) BulkDeleteEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BulkDeleteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkDelete, err)
	}

	if err := h.journalService.BulkDeleteEntries(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkDelete, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessBulkDelete)
}

func (h *journalHandler) ExportEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	query := c.Query("q")
	bucket := c.Query("range", journal.BucketAll)
	sortKey := c.Query("sort", journal.SortRecent)

	csv, err := h.journalService.ExportEntries(c.Context(), userID, query, bucket, sortKey)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportEntries, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+journal.ExportFileName+`"`)
	return c.Status(fiber.StatusOK).Send(csv)
}

func (h *journalHandler) GenerateInsights(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	res, err := h.journalService.GenerateInsights(c.Context(), entryID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateInsights, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateInsights)
}
