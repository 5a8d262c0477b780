package mealplan

import (
	"context"
	"time"

	"RecipeShare-Backend/entities"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlans(ctx context.Context, userID string, start, end *time.Time) ([]*entities.MealPlan, error)
		MealPlanExists(ctx context.Context, id string) (bool, error)
		DeleteMealPlanOwned(ctx context.Context, id, ownerID string) (int64, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, userID string, start, end *time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan

	query := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID)

	if start != nil {
		query = query.Where("planned_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("planned_date <= ?", *end)
	}

	// slots sort breakfast, lunch, dinner rather than alphabetically
	if err := query.
		Order("planned_date, CASE meal_type WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 ELSE 2 END").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) MealPlanExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.MealPlan{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mealPlanRepository) DeleteMealPlanOwned(ctx context.Context, id, ownerID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entities.MealPlan{})
	return tx.RowsAffected, tx.Error
}
