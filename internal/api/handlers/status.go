package handlers

import (
	"errors"

	"RecipeShare-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors to their HTTP status. Anything not in the
// taxonomy falls through to the given default.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrMealPlanNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotRecipeOwner),
		errors.Is(err, domain.ErrNotMealPlanOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailOrUsernameTaken),
		errors.Is(err, domain.ErrEmptyIngredients),
		errors.Is(err, domain.ErrEmptyInstructions),
		errors.Is(err, domain.ErrInvalidMealType),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fallback
	}
}
