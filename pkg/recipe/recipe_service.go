package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, callerID string) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id string, callerID string) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.CreateRecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.SaveRecipeRequest, userID string) error
		DeleteRecipe(ctx context.Context, id string, userID string) error
		ToggleFavorite(ctx context.Context, recipeID string, userID string) (domain.ToggleFavoriteResponse, error)
		GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		fileStorage      storage.FileStorage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, fileStorage storage.FileStorage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		fileStorage:      fileStorage,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, callerID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}

	favorited, err := s.favoritedFor(ctx, callerID, recipes)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		resp, err := toRecipeResponse(r, favorited[r.ID.String()])
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string, callerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	isFavorited := false
	if callerID != "" {
		isFavorited, err = s.recipeRepository.IsFavorited(ctx, callerID, id)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	return toRecipeResponse(recipe, isFavorited)
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.CreateRecipeResponse, error) {
	if len(req.Ingredients) == 0 {
		return domain.CreateRecipeResponse{}, domain.ErrEmptyIngredients
	}
	if len(req.Instructions) == 0 {
		return domain.CreateRecipeResponse{}, domain.ErrEmptyInstructions
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateRecipeResponse{}, domain.ErrParseUUID
	}

	ingredients, err := encodeLines(req.Ingredients)
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}
	instructions, err := encodeLines(req.Instructions)
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	recipeID := uuid.New()

	// uploaded file wins over a supplied URL
	imageURL := req.ImageURL
	if req.Image != nil {
		objectKey, err := s.fileStorage.UploadFile(
			fmt.Sprintf("recipe-%s", recipeID.String()),
			req.Image,
			"recipes",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.CreateRecipeResponse{}, err
		}
		imageURL = s.fileStorage.GetPublicLinkKey(objectKey)
	}

	recipe := &entities.Recipe{
		ID:              recipeID,
		UserID:          userUUID,
		Title:           req.Title,
		Description:     req.Description,
		Ingredients:     ingredients,
		Instructions:    instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		ImageURL:        imageURL,
		Category:        req.Category,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	return domain.CreateRecipeResponse{ID: recipeID.String()}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.SaveRecipeRequest, userID string) error {
	if len(req.Ingredients) == 0 {
		return domain.ErrEmptyIngredients
	}
	if len(req.Instructions) == 0 {
		return domain.ErrEmptyInstructions
	}

	ingredients, err := encodeLines(req.Ingredients)
	if err != nil {
		return err
	}
	instructions, err := encodeLines(req.Instructions)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"title":             req.Title,
		"description":       req.Description,
		"ingredients":       ingredients,
		"instructions":      instructions,
		"prep_time_minutes": req.PrepTimeMinutes,
		"cook_time_minutes": req.CookTimeMinutes,
		"servings":          req.Servings,
		"category":          req.Category,
	}

	// image_url is left out of the update when nothing new was supplied,
	// which keeps the previously stored value
	if req.Image != nil {
		objectKey, err := s.fileStorage.UploadFile(
			fmt.Sprintf("recipe-%s", id),
			req.Image,
			"recipes",
			storage.AllowImage...,
		)
		if err != nil {
			return err
		}
		updates["image_url"] = s.fileStorage.GetPublicLinkKey(objectKey)
	} else if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	rows, err := s.recipeRepository.UpdateRecipeOwned(ctx, id, userID, updates)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.ownershipError(ctx, id)
	}
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	rows, err := s.recipeRepository.DeleteRecipeOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.ownershipError(ctx, id)
	}

	if recipe.ImageURL != "" {
		objectKey := s.fileStorage.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.fileStorage.DeleteFile(objectKey)
		}
	}
	return nil
}

func (s *recipeService) ToggleFavorite(ctx context.Context, recipeID string, userID string) (domain.ToggleFavoriteResponse, error) {
	exists, err := s.recipeRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}
	if !exists {
		return domain.ToggleFavoriteResponse{}, domain.ErrRecipeNotFound
	}

	favorited, err := s.recipeRepository.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}

	if favorited {
		if err := s.recipeRepository.RemoveFavorite(ctx, userID, recipeID); err != nil {
			return domain.ToggleFavoriteResponse{}, err
		}
		return domain.ToggleFavoriteResponse{Favorited: false}, nil
	}

	if err := s.recipeRepository.AddFavorite(ctx, userID, recipeID); err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}
	return domain.ToggleFavoriteResponse{Favorited: true}, nil
}

func (s *recipeService) GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetFavoriteRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		resp, err := toRecipeResponse(r, true)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

// favoritedFor resolves the caller's favorite marks for a recipe batch
// in one query. Anonymous callers get an empty map.
func (s *recipeService) favoritedFor(ctx context.Context, callerID string, recipes []*entities.Recipe) (map[string]bool, error) {
	if callerID == "" {
		return map[string]bool{}, nil
	}

	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID.String())
	}
	return s.recipeRepository.GetFavoritedIDs(ctx, callerID, ids)
}

// ownershipError decides between not-found and forbidden after a
// conditional write matched nothing.
func (s *recipeService) ownershipError(ctx context.Context, id string) error {
	exists, err := s.recipeRepository.RecipeExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}
	return domain.ErrNotRecipeOwner
}

func encodeLines(lines []string) (string, error) {
	raw, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeLines(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var lines []string
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func toRecipeResponse(recipe *entities.Recipe, isFavorited bool) (domain.RecipeResponse, error) {
	ingredients, err := decodeLines(recipe.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	instructions, err := decodeLines(recipe.Instructions)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	username := ""
	if recipe.User != nil {
		username = recipe.User.Username
	}

	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		UserID:          recipe.UserID.String(),
		Username:        username,
		Title:           recipe.Title,
		Description:     recipe.Description,
		Ingredients:     ingredients,
		Instructions:    instructions,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		ImageURL:        recipe.ImageURL,
		Category:        recipe.Category,
		CreatedAt:       recipe.CreatedAt,
		IsFavorited:     isFavorited,
	}, nil
}
