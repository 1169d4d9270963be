package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wingman/cmd/fx/catalog_fx"
	"wingman/cmd/fx/config_fx"
	"wingman/cmd/fx/conversations_fx"
	"wingman/cmd/fx/db_fx"
	"wingman/cmd/fx/documents_fx"
	"wingman/cmd/fx/generation_fx"
	"wingman/cmd/fx/users_fx"
	"wingman/cmd/fx/voice_fx"
	"wingman/internal/api/controllers"
	"wingman/internal/infra"
	"wingman/internal/models/db_models"
	"wingman/internal/services"
	"wingman/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		catalog_fx.Module,
		users_fx.Module,
		conversations_fx.Module,
		generation_fx.Module,
		voice_fx.Module,
		documents_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(MigrateAndSeed),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// MigrateAndSeed prepares the schema and reference catalog. With no database
// connection both steps are skipped and the app serves from built-ins.
func MigrateAndSeed(db *gorm.DB, catalogService services.CatalogServiceInterface) {
	if db == nil {
		log.Println("No database connection, skipping migration and seed")
		return
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Conversation{},
		&db_models.Scenario{},
		&db_models.Persona{},
	); err != nil {
		log.Printf("Auto migration failed: %v", err)
		return
	}

	if err := catalogService.Seed(context.Background()); err != nil {
		log.Printf("Catalog seed failed: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	generationController *controllers.GenerationController,
	voiceController *controllers.VoiceController,
	userController *controllers.UserController,
	conversationController *controllers.ConversationController,
	catalogController *controllers.CatalogController,
	documentController *controllers.DocumentController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg,
		generationController, voiceController, userController,
		conversationController, catalogController, documentController)

	return r
}

func RegisterRoutes(r *gin.Engine, cfg *infra.Config,
	generationController *controllers.GenerationController,
	voiceController *controllers.VoiceController,
	userController *controllers.UserController,
	conversationController *controllers.ConversationController,
	catalogController *controllers.CatalogController,
	documentController *controllers.DocumentController) {

	api := r.Group("/api")

	aiGroup := api.Group("/ai")
	aiGroup.POST("/generate-opening", generationController.GenerateOpeningHandler)
	aiGroup.POST("/generate-response", generationController.GenerateReplyHandler)
	aiGroup.POST("/generate-feedback", generationController.GenerateFeedbackHandler)
	aiGroup.POST("/generate-scene", generationController.GenerateSceneHandler)
	aiGroup.POST("/generate-tips", generationController.GenerateTipsHandler)

	api.POST("/voice/token", voiceController.IssueTokenHandler)
	api.POST("/documents/parse", documentController.ParseHandler)

	api.GET("/scenarios", catalogController.ListScenariosHandler)
	api.GET("/scenarios/:id", catalogController.GetScenarioHandler)
	api.GET("/personas", catalogController.ListPersonasHandler)
	api.GET("/personas/:id", catalogController.GetPersonaHandler)

	authed := api.Group("")
	authed.Use(middleware.IdentityMiddleware([]byte(cfg.AuthJWTSecret)))

	usersGroup := authed.Group("/users/me")
	usersGroup.GET("", userController.GetMeHandler)
	usersGroup.PUT("/profile", userController.UpdateProfileHandler)
	usersGroup.POST("/onboarding", userController.CompleteOnboardingHandler)
	usersGroup.POST("/streak", userController.UpdateStreakHandler)
	usersGroup.POST("/usage", userController.RecordUsageHandler)
	usersGroup.POST("/practice", userController.RecordPracticeHandler)
	usersGroup.GET("/dashboard", userController.DashboardHandler)

	conversationsGroup := authed.Group("/conversations")
	conversationsGroup.POST("", conversationController.CreateHandler)
	conversationsGroup.GET("", conversationController.ListHandler)
	conversationsGroup.GET("/:id", conversationController.GetHandler)
	conversationsGroup.POST("/:id/messages", conversationController.AppendHandler)
	conversationsGroup.POST("/:id/complete", conversationController.CompleteHandler)
}
