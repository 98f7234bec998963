package handlers

import (
	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/pkg/relation"

	"github.com/gofiber/fiber/v2"
)

type (
	RelationHandler interface {
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		AddToCart(c *fiber.Ctx) error
		RemoveFromCart(c *fiber.Ctx) error
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
	}

	relationHandler struct {
		relationService relation.RelationService
	}
)

func NewRelationHandler(relationService relation.RelationService) RelationHandler {
	return &relationHandler{relationService: relationService}
}

func (h *relationHandler) activate(c *fiber.Ctx, kind relation.Kind) error {
	userID := c.Locals("user_id").(string)
	objectID := c.Params("id")

	res, err := h.relationService.Activate(c.Context(), userID, objectID, kind)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedActivateRelation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessActivateRelation)
}

func (h *relationHandler) deactivate(c *fiber.Ctx, kind relation.Kind) error {
	userID := c.Locals("user_id").(string)
	objectID := c.Params("id")

	if err := h.relationService.Deactivate(c.Context(), userID, objectID, kind); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeactivateRelation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeactivateRelation)
}

func (h *relationHandler) AddFavorite(c *fiber.Ctx) error {
	return h.activate(c, relation.KindFavorite)
}

func (h *relationHandler) RemoveFavorite(c *fiber.Ctx) error {
	return h.deactivate(c, relation.KindFavorite)
}

func (h *relationHandler) AddToCart(c *fiber.Ctx) error {
	return h.activate(c, relation.KindCart)
}

func (h *relationHandler) RemoveFromCart(c *fiber.Ctx) error {
	return h.deactivate(c, relation.KindCart)
}

func (h *relationHandler) Subscribe(c *fiber.Ctx) error {
	return h.activate(c, relation.KindFollow)
}

func (h *relationHandler) Unsubscribe(c *fiber.Ctx) error {
	return h.deactivate(c, relation.KindFollow)
}
