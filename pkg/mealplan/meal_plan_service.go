package mealplan

import (
	"context"
	"time"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/recipe"

	"github.com/google/uuid"
)

type (
	MealPlanService interface {
		GetMealPlans(ctx context.Context, userID string, startDate, endDate string) ([]domain.MealPlanResponse, error)
		GetWeekGrid(ctx context.Context, userID string, anchorDate string) (domain.WeekGridResponse, error)
		CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.CreateMealPlanResponse, error)
		DeleteMealPlan(ctx context.Context, id string, userID string) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		recipeRepository   recipe.RecipeRepository
	}
)

const dateLayout = "2006-01-02"

func NewMealPlanService(mealPlanRepository MealPlanRepository, recipeRepository recipe.RecipeRepository) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, userID string, startDate, endDate string) ([]domain.MealPlanResponse, error) {
	var start, end *time.Time

	if startDate != "" {
		parsed, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		start = &parsed
	}
	if endDate != "" {
		parsed, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		end = &parsed
	}

	plans, err := s.mealPlanRepository.GetMealPlans(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, toMealPlanResponse(plan))
	}
	return result, nil
}

func (s *mealPlanService) GetWeekGrid(ctx context.Context, userID string, anchorDate string) (domain.WeekGridResponse, error) {
	anchor := time.Now()
	if anchorDate != "" {
		parsed, err := time.Parse(dateLayout, anchorDate)
		if err != nil {
			return domain.WeekGridResponse{}, domain.ErrInvalidDate
		}
		anchor = parsed
	}

	weekStart, weekEnd := WeekBounds(anchor)

	plans, err := s.mealPlanRepository.GetMealPlans(ctx, userID, &weekStart, &weekEnd)
	if err != nil {
		return domain.WeekGridResponse{}, err
	}

	grid := domain.WeekGridResponse{
		StartDate: weekStart.Format(dateLayout),
		EndDate:   weekEnd.Format(dateLayout),
		Days:      make([]domain.WeekGridDay, 0, 7),
	}

	dayIndex := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i).Format(dateLayout)
		meals := make(map[string][]domain.MealPlanResponse, len(domain.MealTypes))
		for _, slot := range domain.MealTypes {
			meals[slot] = []domain.MealPlanResponse{}
		}
		grid.Days = append(grid.Days, domain.WeekGridDay{Date: date, Meals: meals})
		dayIndex[date] = i
	}

	for _, plan := range plans {
		date := plan.PlannedDate.Format(dateLayout)
		i, ok := dayIndex[date]
		if !ok {
			continue
		}
		day := grid.Days[i]
		day.Meals[plan.MealType] = append(day.Meals[plan.MealType], toMealPlanResponse(plan))
	}

	return grid, nil
}

// WeekBounds returns the 7-day window containing the anchor: the most
// recent Sunday on or before it through the following Saturday.
func WeekBounds(anchor time.Time) (time.Time, time.Time) {
	anchor = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	start := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	end := start.AddDate(0, 0, 6)
	return start, end
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.CreateMealPlanResponse, error) {
	if !validMealType(req.MealType) {
		return domain.CreateMealPlanResponse{}, domain.ErrInvalidMealType
	}

	plannedDate, err := time.Parse(dateLayout, req.PlannedDate)
	if err != nil {
		return domain.CreateMealPlanResponse{}, domain.ErrInvalidDate
	}

	exists, err := s.recipeRepository.RecipeExists(ctx, req.RecipeID)
	if err != nil {
		return domain.CreateMealPlanResponse{}, err
	}
	if !exists {
		return domain.CreateMealPlanResponse{}, domain.ErrRecipeNotFound
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateMealPlanResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.CreateMealPlanResponse{}, domain.ErrParseUUID
	}

	// several recipes may share a date and slot on purpose
	plan := &entities.MealPlan{
		ID:          uuid.New(),
		UserID:      userUUID,
		RecipeID:    recipeUUID,
		PlannedDate: plannedDate,
		MealType:    req.MealType,
	}

	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return domain.CreateMealPlanResponse{}, err
	}

	return domain.CreateMealPlanResponse{ID: plan.ID.String()}, nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id string, userID string) error {
	rows, err := s.mealPlanRepository.DeleteMealPlanOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	exists, err := s.mealPlanRepository.MealPlanExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrMealPlanNotFound
	}
	return domain.ErrNotMealPlanOwner
}

func validMealType(mealType string) bool {
	for _, t := range domain.MealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}

func toMealPlanResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	resp := domain.MealPlanResponse{
		ID:          plan.ID.String(),
		RecipeID:    plan.RecipeID.String(),
		PlannedDate: plan.PlannedDate.Format(dateLayout),
		MealType:    plan.MealType,
		CreatedAt:   plan.CreatedAt,
	}
	if plan.Recipe != nil {
		resp.RecipeTitle = plan.Recipe.Title
		resp.RecipeImageURL = plan.Recipe.ImageURL
		resp.PrepTimeMinutes = plan.Recipe.PrepTimeMinutes
		resp.CookTimeMinutes = plan.Recipe.CookTimeMinutes
	}
	return resp
}
