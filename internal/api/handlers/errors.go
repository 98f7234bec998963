package handlers

import (
	"errors"
	"foodgram/domain"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain errors onto HTTP statuses so no storage-layer
// error reaches a response unmapped.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrAuthorNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrNotFavorited),
		errors.Is(err, domain.ErrNotInCart),
		errors.Is(err, domain.ErrNotSubscribed):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyFavorited),
		errors.Is(err, domain.ErrAlreadyInCart),
		errors.Is(err, domain.ErrAlreadySubscribed):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotRecipeAuthor):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrSelfSubscribe),
		errors.Is(err, domain.ErrIngredientsEmpty),
		errors.Is(err, domain.ErrTagsEmpty),
		errors.Is(err, domain.ErrAmountNotPositive),
		errors.Is(err, domain.ErrDuplicateIngredient),
		errors.Is(err, domain.ErrCookingTimeNotPositive),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
