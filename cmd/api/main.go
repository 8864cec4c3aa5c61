package main

import (
	"context"
	"log"
	"os"
	"time"

	"wellship/internal/auth"
	"wellship/internal/db"
	"wellship/internal/feedback"
	"wellship/internal/ingredient"
	"wellship/internal/llm"
	"wellship/internal/menu"
	"wellship/internal/middleware"
	"wellship/internal/procurement"
	"wellship/internal/recipe"
	"wellship/internal/storage"
	"wellship/internal/vessel"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	vesselRepo := vessel.NewPostgresRepository(pgDB)
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	recipeRepo := recipe.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	adjustmentStore := procurement.NewPostgresAdjustmentStore(pgDB)
	feedbackRepo := feedback.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	llmClient := llm.NewGeminiClient()

	vesselService := vessel.NewService(vesselRepo)

	menuService := menu.NewService(
		menuRepo,
		recipeRepo,
		ingredientRepo,
		vesselRepo,
		llmClient,
	)

	procurementService := procurement.NewService(
		menuRepo,
		recipeRepo,
		vesselRepo,
		ingredientRepo,
		adjustmentStore,
	)

	feedbackService := feedback.NewService(feedbackRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	vesselHandler := vessel.NewHandler(vesselService)
	ingredientHandler := ingredient.NewHandler(ingredientRepo)
	menuHandler := menu.NewHandler(menuService)
	procurementHandler := procurement.NewHandler(procurementService, r2Client)
	feedbackHandler := feedback.NewHandler(feedbackService)

	// ───────────────────────── VESSEL ROUTES ─────────────────────────
	vessels := r.Group("/vessels")
	vessels.Use(
		middleware.AuthMiddleware(),
		middleware.RequireCapability(middleware.CapManageCompany),
	)
	{
		vessels.POST("", vesselHandler.CreateVessel)
		vessels.GET("/me", vesselHandler.ListMyVessels)
		vessels.PUT("/:id/crew", vesselHandler.SetCrewCount)
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/vessels/:id/menu")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.GET("", middleware.RequireCapability(middleware.CapReadPlan), menuHandler.GetPlan)
		menus.POST("/generate", middleware.RequireCapability(middleware.CapWriteAdjustment), menuHandler.Generate)
		menus.POST("/swap", middleware.RequireCapability(middleware.CapWriteAdjustment), menuHandler.Swap)
	}

	// ───────────────────────── PROCUREMENT ROUTES ─────────────────────────
	procurementGroup := r.Group("/vessels/:id/procurement")
	procurementGroup.Use(middleware.AuthMiddleware())
	{
		procurementGroup.POST("/generate", middleware.RequireCapability(middleware.CapReadPlan), procurementHandler.Generate)
		procurementGroup.GET("/export", middleware.RequireCapability(middleware.CapReadPlan), procurementHandler.Export)
		procurementGroup.PUT("/adjustments", middleware.RequireCapability(middleware.CapWriteAdjustment), procurementHandler.SaveAdjustment)
	}

	// ───────────────────────── FEEDBACK ROUTES ─────────────────────────
	feedbackGroup := r.Group("/vessels/:id/feedback")
	feedbackGroup.Use(middleware.AuthMiddleware())
	{
		feedbackGroup.POST("", middleware.RequireCapability(middleware.CapReadPlan), feedbackHandler.Submit)
		feedbackGroup.GET("/summary", middleware.RequireCapability(middleware.CapManageCompany), feedbackHandler.Summary)
	}

	// ───────────────────────── INGREDIENT ROUTES ─────────────────────────
	r.GET("/ingredients", middleware.AuthMiddleware(), ingredientHandler.List)

	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireCapability(middleware.CapManageCompany),
	)
	{
		admin.POST("/ingredients", ingredientHandler.Create)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
