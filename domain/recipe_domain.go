package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes     = "success get recipes"
	MessageSuccessGetRecipe      = "success get recipe detail"
	MessageSuccessCreateRecipe   = "recipe created successfully"
	MessageSuccessUpdateRecipe   = "recipe updated successfully"
	MessageSuccessDeleteRecipe   = "recipe deleted successfully"
	MessageSuccessToggleFavorite = "favorite toggled successfully"
	MessageSuccessGetFavorites   = "success get favorite recipes"

	MessageFailedGetRecipes     = "failed to get recipes"
	MessageFailedGetRecipe      = "failed to get recipe detail"
	MessageFailedCreateRecipe   = "failed to create recipe"
	MessageFailedUpdateRecipe   = "failed to update recipe"
	MessageFailedDeleteRecipe   = "failed to delete recipe"
	MessageFailedToggleFavorite = "failed to toggle favorite"
	MessageFailedGetFavorites   = "failed to get favorite recipes"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrNotRecipeOwner    = errors.New("not authorized to modify this recipe")
	ErrEmptyIngredients  = errors.New("ingredients must not be empty")
	ErrEmptyInstructions = errors.New("instructions must not be empty")
)

type (
	RecipeFilter struct {
		Search   string
		Category string
		UserID   string
	}

	SaveRecipeRequest struct {
		Title           string                `json:"title" form:"title" validate:"required"`
		Description     string                `json:"description" form:"description"`
		Ingredients     []string              `json:"ingredients" form:"ingredients" validate:"required,min=1,dive,required"`
		Instructions    []string              `json:"instructions" form:"instructions" validate:"required,min=1,dive,required"`
		PrepTimeMinutes int                   `json:"prep_time_minutes" form:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int                   `json:"cook_time_minutes" form:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int                   `json:"servings" form:"servings" validate:"omitempty,min=0"`
		ImageURL        string                `json:"image_url" form:"image_url"`
		Category        string                `json:"category" form:"category"`
		Image           *multipart.FileHeader `json:"-" form:"-"`
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		Username        string    `json:"username,omitempty"`
		Title           string    `json:"title"`
		Description     string    `json:"description,omitempty"`
		Ingredients     []string  `json:"ingredients"`
		Instructions    []string  `json:"instructions"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		ImageURL        string    `json:"image_url,omitempty"`
		Category        string    `json:"category,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
		IsFavorited     bool      `json:"is_favorited"`
	}

	CreateRecipeResponse struct {
		ID string `json:"id"`
	}

	ToggleFavoriteResponse struct {
		Favorited bool `json:"favorited"`
	}
)
