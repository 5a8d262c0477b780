package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMealPlans   = "success get meal plans"
	MessageSuccessGetWeekGrid    = "success get weekly meal plan"
	MessageSuccessCreateMealPlan = "added to meal plan"
	MessageSuccessDeleteMealPlan = "removed from meal plan"

	MessageFailedGetMealPlans   = "failed to get meal plans"
	MessageFailedGetWeekGrid    = "failed to get weekly meal plan"
	MessageFailedCreateMealPlan = "failed to add to meal plan"
	MessageFailedDeleteMealPlan = "failed to remove from meal plan"

	ErrMealPlanNotFound = errors.New("meal plan entry not found")
	ErrNotMealPlanOwner = errors.New("not authorized to modify this meal plan entry")
	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrInvalidDate      = errors.New("invalid date format")
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// MealTypes lists the valid slots in display order.
var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

type (
	CreateMealPlanRequest struct {
		RecipeID    string `json:"recipe_id" validate:"required,uuid"`
		PlannedDate string `json:"planned_date" validate:"required"`
		MealType    string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner"`
	}

	MealPlanResponse struct {
		ID              string    `json:"id"`
		RecipeID        string    `json:"recipe_id"`
		PlannedDate     string    `json:"planned_date"`
		MealType        string    `json:"meal_type"`
		RecipeTitle     string    `json:"recipe_title"`
		RecipeImageURL  string    `json:"recipe_image_url,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		CreatedAt       time.Time `json:"created_at"`
	}

	CreateMealPlanResponse struct {
		ID string `json:"id"`
	}

	// WeekGridResponse buckets one week of entries into a 7x3 grid.
	// Days run Sunday through Saturday; empty cells are empty lists.
	WeekGridResponse struct {
		StartDate string        `json:"start_date"`
		EndDate   string        `json:"end_date"`
		Days      []WeekGridDay `json:"days"`
	}

	WeekGridDay struct {
		Date  string                        `json:"date"`
		Meals map[string][]MealPlanResponse `json:"meals"`
	}
)
