package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		GetMealPlans(c *fiber.Ctx) error
		GetWeekGrid(c *fiber.Ctx) error
		CreateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetMealPlans(
		c.Context(),
		userID,
		c.Query("start_date", ""),
		c.Query("end_date", ""),
	)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetWeekGrid(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetWeekGrid(c.Context(), userID, c.Query("date", ""))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetWeekGrid, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeekGrid)
}

func (h *mealPlanHandler) CreateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealPlan, err)
	}

	res, err := h.mealPlanService.CreateMealPlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err, fiber.StatusInternalServerError), domain.MessageFailedCreateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), planID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err, fiber.StatusInternalServerError), domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}
