package handlers

import (
	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/pkg/shopping"

	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		DownloadShoppingList(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService) ShoppingHandler {
	return &shoppingHandler{shoppingService: shoppingService}
}

// DownloadShoppingList streams the aggregated cart as a text attachment.
func (h *shoppingHandler) DownloadShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	report, err := h.shoppingService.BuildReport(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDownloadShoppingList, err)
	}

	c.Set(fiber.HeaderContentType, report.ContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+report.Filename)
	return c.SendString(report.Content)
}
