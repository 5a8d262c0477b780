package recipe

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) RecipeExists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRecipeRepository) UpdateRecipeOwned(ctx context.Context, id, ownerID string, updates map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, ownerID, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRecipeRepository) DeleteRecipeOwned(ctx context.Context, id, ownerID string) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRecipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *mockRecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *mockRecipeRepository) IsFavorited(ctx context.Context, userID, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRecipeRepository) GetFavoritedIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *mockRecipeRepository) GetFavoriteRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	args := m.Called(fileName, file, folder)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	args := m.Called(objectKey, file)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *mockFileStorage) GetPublicLinkKey(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *mockFileStorage) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}

func sampleRecipe(ownerID uuid.UUID) *entities.Recipe {
	return &entities.Recipe{
		ID:           uuid.New(),
		UserID:       ownerID,
		Title:        "Tea",
		Ingredients:  `["water","tea bag"]`,
		Instructions: `["boil","steep"]`,
		Category:     "Beverage",
		User:         &entities.User{ID: ownerID, Username: "alice"},
		Timestamp:    entities.Timestamp{CreatedAt: time.Now()},
	}
}

func TestCreateRecipe_EmptyIngredients(t *testing.T) {
	repo := &mockRecipeRepository{}
	svc := NewRecipeService(repo, &mockFileStorage{})

	_, err := svc.CreateRecipe(context.Background(), domain.SaveRecipeRequest{
		Title:        "Tea",
		Instructions: []string{"boil"},
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrEmptyIngredients)

	_, err = svc.CreateRecipe(context.Background(), domain.SaveRecipeRequest{
		Title:       "Tea",
		Ingredients: []string{"water"},
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrEmptyInstructions)
}

func TestCreateRecipe_EncodesListsInOrder(t *testing.T) {
	repo := &mockRecipeRepository{}
	svc := NewRecipeService(repo, &mockFileStorage{})

	var created *entities.Recipe
	repo.On("CreateRecipe", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entities.Recipe)
		}).
		Return(nil)

	res, err := svc.CreateRecipe(context.Background(), domain.SaveRecipeRequest{
		Title:        "Tea",
		Ingredients:  []string{"water", "tea bag"},
		Instructions: []string{"boil", "steep"},
		Category:     "Beverage",
		ImageURL:     "https://example.com/tea.jpg",
	}, uuid.NewString())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)

	require.NotNil(t, created)
	assert.Equal(t, `["water","tea bag"]`, created.Ingredients)
	assert.Equal(t, `["boil","steep"]`, created.Instructions)
	assert.Equal(t, "https://example.com/tea.jpg", created.ImageURL)
}

func TestCreateRecipe_UploadedImageWinsOverURL(t *testing.T) {
	repo := &mockRecipeRepository{}
	fs := &mockFileStorage{}
	svc := NewRecipeService(repo, fs)

	fs.On("UploadFile", mock.Anything, mock.Anything, "recipes").Return("recipes/recipe-x.png", nil)
	fs.On("GetPublicLinkKey", "recipes/recipe-x.png").Return("/uploads/recipes/recipe-x.png")

	var created *entities.Recipe
	repo.On("CreateRecipe", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entities.Recipe)
		}).
		Return(nil)

	_, err := svc.CreateRecipe(context.Background(), domain.SaveRecipeRequest{
		Title:        "Tea",
		Ingredients:  []string{"water"},
		Instructions: []string{"boil"},
		ImageURL:     "https://example.com/ignored.jpg",
		Image:        &multipart.FileHeader{Filename: "tea.png"},
	}, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, "/uploads/recipes/recipe-x.png", created.ImageURL)
}

func TestUpdateRecipe_OwnershipDiscrimination(t *testing.T) {
	ownerID := uuid.NewString()
	recipeID := uuid.NewString()

	t.Run("recipe gone", func(t *testing.T) {
		repo := &mockRecipeRepository{}
		svc := NewRecipeService(repo, &mockFileStorage{})

		repo.On("UpdateRecipeOwned", mock.Anything, recipeID, ownerID, mock.Anything).Return(int64(0), nil)
		repo.On("RecipeExists", mock.Anything, recipeID).Return(false, nil)

		err := svc.UpdateRecipe(context.Background(), recipeID, validSaveRequest(), ownerID)
		require.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		repo := &mockRecipeRepository{}
		svc := NewRecipeService(repo, &mockFileStorage{})

		repo.On("UpdateRecipeOwned", mock.Anything, recipeID, ownerID, mock.Anything).Return(int64(0), nil)
		repo.On("RecipeExists", mock.Anything, recipeID).Return(true, nil)

		err := svc.UpdateRecipe(context.Background(), recipeID, validSaveRequest(), ownerID)
		require.ErrorIs(t, err, domain.ErrNotRecipeOwner)
	})

	t.Run("owner succeeds", func(t *testing.T) {
		repo := &mockRecipeRepository{}
		svc := NewRecipeService(repo, &mockFileStorage{})

		repo.On("UpdateRecipeOwned", mock.Anything, recipeID, ownerID, mock.Anything).Return(int64(1), nil)

		err := svc.UpdateRecipe(context.Background(), recipeID, validSaveRequest(), ownerID)
		require.NoError(t, err)
	})
}

func TestUpdateRecipe_KeepsStoredImageWhenNoneSupplied(t *testing.T) {
	repo := &mockRecipeRepository{}
	svc := NewRecipeService(repo, &mockFileStorage{})

	var updates map[string]interface{}
	repo.On("UpdateRecipeOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updates = args.Get(3).(map[string]interface{})
		}).
		Return(int64(1), nil)

	req := validSaveRequest()
	req.ImageURL = ""
	err := svc.UpdateRecipe(context.Background(), uuid.NewString(), req, uuid.NewString())
	require.NoError(t, err)

	_, hasImage := updates["image_url"]
	assert.False(t, hasImage, "image_url should be omitted so the stored value survives")
}

func TestDeleteRecipe_RemovesStoredImage(t *testing.T) {
	ownerID := uuid.New()
	recipe := sampleRecipe(ownerID)
	recipe.ImageURL = "/uploads/recipes/recipe-1.png"

	repo := &mockRecipeRepository{}
	fs := &mockFileStorage{}
	svc := NewRecipeService(repo, fs)

	repo.On("GetRecipeByID", mock.Anything, recipe.ID.String()).Return(recipe, nil)
	repo.On("DeleteRecipeOwned", mock.Anything, recipe.ID.String(), ownerID.String()).Return(int64(1), nil)
	fs.On("GetObjectKeyFromLink", recipe.ImageURL).Return("recipes/recipe-1.png")
	fs.On("DeleteFile", "recipes/recipe-1.png").Return(nil)

	err := svc.DeleteRecipe(context.Background(), recipe.ID.String(), ownerID.String())
	require.NoError(t, err)
	fs.AssertCalled(t, "DeleteFile", "recipes/recipe-1.png")
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	repo := &mockRecipeRepository{}
	svc := NewRecipeService(repo, &mockFileStorage{})

	repo.On("GetRecipeByID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteRecipe(context.Background(), uuid.NewString(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestToggleFavorite(t *testing.T) {
	userID := uuid.NewString()
	recipeID := uuid.NewString()

	t.Run("missing recipe", func(t *testing.T) {
		repo := &mockRecipeRepository{}
		svc := NewRecipeService(repo, &mockFileStorage{})

		repo.On("RecipeExists", mock.Anything, recipeID).Return(false, nil)

		_, err := svc.ToggleFavorite(context.Background(), recipeID, userID)
		require.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("marks when unmarked", func(t *testing.T) {
		repo := &mockRecipeRepository{}
		svc := NewRecipeService(repo, &mockFileStorage{})

		repo.On("RecipeExists", mock.Anything, recipeID).Return(true, nil)
		repo.On("IsFavorited", mock.Anything, userID, recipeID).Return(false, nil)
		repo.On("AddFavorite", mock.Anything, userID, recipeID).Return(nil)

		res, err := svc.ToggleFavorite(context.Background(), recipeID, userID)
		require.NoError(t, err)
		assert.True(t, res.Favorited)
	})

	t.Run("unmarks when marked", func(t *testing.T) {
		repo := &mockRecipeRepository{}
		svc := NewRecipeService(repo, &mockFileStorage{})

		repo.On("RecipeExists", mock.Anything, recipeID).Return(true, nil)
		repo.On("IsFavorited", mock.Anything, userID, recipeID).Return(true, nil)
		repo.On("RemoveFavorite", mock.Anything, userID, recipeID).Return(nil)

		res, err := svc.ToggleFavorite(context.Background(), recipeID, userID)
		require.NoError(t, err)
		assert.False(t, res.Favorited)
	})
}

func TestGetRecipes_AnnotatesFavorites(t *testing.T) {
	ownerID := uuid.New()
	first := sampleRecipe(ownerID)
	second := sampleRecipe(ownerID)
	callerID := uuid.NewString()

	repo := &mockRecipeRepository{}
	svc := NewRecipeService(repo, &mockFileStorage{})

	repo.On("GetRecipes", mock.Anything, mock.Anything).Return([]*entities.Recipe{first, second}, nil)
	repo.On("GetFavoritedIDs", mock.Anything, callerID, []string{first.ID.String(), second.ID.String()}).
		Return(map[string]bool{first.ID.String(): true}, nil)

	res, err := svc.GetRecipes(context.Background(), domain.RecipeFilter{}, callerID)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.True(t, res[0].IsFavorited)
	assert.False(t, res[1].IsFavorited)
	assert.Equal(t, []string{"water", "tea bag"}, res[0].Ingredients)
	assert.Equal(t, "alice", res[0].Username)
}

func TestGetRecipes_AnonymousCaller(t *testing.T) {
	ownerID := uuid.New()
	repo := &mockRecipeRepository{}
	svc := NewRecipeService(repo, &mockFileStorage{})

	repo.On("GetRecipes", mock.Anything, mock.Anything).Return([]*entities.Recipe{sampleRecipe(ownerID)}, nil)

	res, err := svc.GetRecipes(context.Background(), domain.RecipeFilter{}, "")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.False(t, res[0].IsFavorited)
	repo.AssertNotCalled(t, "GetFavoritedIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetFavoriteRecipes_AllMarked(t *testing.T) {
	ownerID := uuid.New()
	callerID := uuid.NewString()

	repo := &mockRecipeRepository{}
	svc := NewRecipeService(repo, &mockFileStorage{})

	repo.On("GetFavoriteRecipes", mock.Anything, callerID).
		Return([]*entities.Recipe{sampleRecipe(ownerID), sampleRecipe(ownerID)}, nil)

	res, err := svc.GetFavoriteRecipes(context.Background(), callerID)
	require.NoError(t, err)
	require.Len(t, res, 2)
	for _, r := range res {
		assert.True(t, r.IsFavorited)
	}
}

func validSaveRequest() domain.SaveRecipeRequest {
	return domain.SaveRecipeRequest{
		Title:        "Tea",
		Ingredients:  []string{"water", "tea bag"},
		Instructions: []string{"boil", "steep"},
		Category:     "Beverage",
	}
}
