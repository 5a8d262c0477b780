package config

import (
	"os"
	"time"

	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/api/routes"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/internal/utils/storage"
	"RecipeShare-Backend/pkg/jwt"
	"RecipeShare-Backend/pkg/mealplan"
	"RecipeShare-Backend/pkg/recipe"
	"RecipeShare-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// uploaded images are served from the uploads directory when the
	// local storage driver is active
	fileStorage := storage.NewFileStorage()
	if utils.GetConfig("STORAGE_DRIVER") != "s3" {
		uploadDir := utils.GetConfig("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			log.Fatalf("error creating uploads directory: %v", err)
		}
		app.Static("/uploads", uploadDir)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, fileStorage)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		MealPlanHandler: mealPlanHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
