// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ayoo/internal/handlers"
	"ayoo/internal/middleware"
	"ayoo/internal/repositories"
	"ayoo/internal/services/auth"
	"ayoo/internal/services/catalog"
	"ayoo/internal/services/dashboard"
	"ayoo/internal/services/deals"
	"ayoo/internal/services/onboarding"
	"ayoo/internal/services/store"
	"ayoo/internal/services/user"
	"ayoo/internal/storage"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, objects storage.ObjectStorage) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)
	categoryRepo := repositories.NewCategoryRepository(repositories.DB)
	productRepo := repositories.NewProductRepository(repositories.DB)
	dealRepo := repositories.NewDealRepository(repositories.DB)
	storeRepo := repositories.NewStoreInfoRepository(repositories.DB)

	// Initialize services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	onboardingService := onboarding.NewService(db, repositories.CacheService)
	catalogService := catalog.NewService(categoryRepo, productRepo)
	dealService := deals.NewService(dealRepo)
	storeService := store.NewService(storeRepo)
	dashboardService := dashboard.NewService(categoryRepo, productRepo, dealRepo, storeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService, objects)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService)
	dealHandler := handlers.NewDealHandler(dealService)
	storeHandler := handlers.NewStoreHandler(storeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(objects)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register", userHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)
	api.Get("/health", handlers.HealthCheck)

	// Also add a root welcome route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Ayoo API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Create middleware instances
	authMiddleware := middleware.NewAuthMiddleware(authService)
	gate := middleware.NewOnboardingGate(middleware.SetupCompleted)

	// Protected routes with auth middleware
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)

	protected.Get("/users/me", userHandler.Me)
	protected.Patch("/users/me", userHandler.Update)
	protected.Delete("/users/me", userHandler.DeleteAccount)

	// Onboarding runs exactly once per account. Completed merchants are
	// bounced back to the dashboard.
	protected.Post("/onboarding", gate.RequireNotOnboarded, onboardingHandler.Complete)

	// The preview is reachable without a completed setup so merchants
	// can see their storefront take shape; it 404s until the store
	// record exists.
	protected.Get("/preview", dashboardHandler.Preview)

	// Feature routes require a completed store setup.
	onboarded := protected.Group("", gate.RequireOnboarded)

	categories := onboarded.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Patch("/:id/toggle", categoryHandler.Toggle)
	categories.Delete("/:id", categoryHandler.Delete)

	products := onboarded.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/toggle", productHandler.Toggle)
	products.Delete("/:id", productHandler.Delete)

	dealRoutes := onboarded.Group("/deals")
	dealRoutes.Get("/", dealHandler.List)
	dealRoutes.Post("/", dealHandler.Create)
	dealRoutes.Put("/:id", dealHandler.Update)
	dealRoutes.Patch("/:id/toggle", dealHandler.Toggle)
	dealRoutes.Delete("/:id", dealHandler.Delete)

	storeRoutes := onboarded.Group("/store")
	storeRoutes.Get("/", storeHandler.Get)
	storeRoutes.Put("/:id", storeHandler.Update)
	storeRoutes.Patch("/toggle", storeHandler.ToggleOpen)

	onboarded.Get("/dashboard/stats", dashboardHandler.Stats)
	onboarded.Post("/uploads", uploadHandler.Image)
}
