package recipe

import (
	"context"
	"time"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error)
		RecipeExists(ctx context.Context, id string) (bool, error)
		UpdateRecipeOwned(ctx context.Context, id, ownerID string, updates map[string]interface{}) (int64, error)
		DeleteRecipeOwned(ctx context.Context, id, ownerID string) (int64, error)

		AddFavorite(ctx context.Context, userID, recipeID string) error
		RemoveFavorite(ctx context.Context, userID, recipeID string) error
		IsFavorited(ctx context.Context, userID, recipeID string) (bool, error)
		GetFavoritedIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error)
		GetFavoriteRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).Preload("User")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) RecipeExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateRecipeOwned applies the ownership check and the write in one statement.
// The affected-row count tells the caller whether anything matched.
func (r *recipeRepository) UpdateRecipeOwned(ctx context.Context, id, ownerID string, updates map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(updates)
	return tx.RowsAffected, tx.Error
}

func (r *recipeRepository) DeleteRecipeOwned(ctx context.Context, id, ownerID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entities.Recipe{})
	return tx.RowsAffected, tx.Error
}

func (r *recipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	favorite := entities.Favorite{
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&favorite).Error
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{}).Error
}

func (r *recipeRepository) IsFavorited(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetFavoritedIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	favorited := make(map[string]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return favorited, nil
	}

	var marks []entities.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Find(&marks).Error; err != nil {
		return nil, err
	}

	for _, mark := range marks {
		favorited[mark.RecipeID.String()] = true
	}
	return favorited, nil
}

func (r *recipeRepository) GetFavoriteRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN favorites ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
