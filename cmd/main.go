package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"formhub/config"
	"formhub/database"
	_ "formhub/docs" // Swagger docs - auto-generated
	"formhub/internal/controller"
	adminctrl "formhub/internal/controller/admin"
	"formhub/internal/logger"
	"formhub/internal/model"
	"formhub/internal/repository"
	"formhub/internal/service"
)

// @title FormHub API
// @version 1.0
// @description Forms authoring and response collection backend: forms with ordered questions and options, tags, private access grants, filled forms, likes and comments.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewFormRepository,
			repository.NewTagRepository,
			repository.NewFilledFormRepository,
			repository.NewLikeRepository,
			repository.NewCommentRepository,
		),

		// Services layer. FormService and FormEditorService take *gorm.DB
		// directly for their multi-table transactions.
		fx.Provide(
			service.NewAuthService,
			service.NewFormService,
			service.NewFormEditorService,
			service.NewResponseService,
			service.NewEngagementService,
			service.NewTagService,
			service.NewUserAdminService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewFormController,
			controller.NewResponseController,
			controller.NewEngagementController,
			controller.NewTagController,
			adminctrl.NewUserAdminController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route Gin's access log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	formCtrl *controller.FormController,
	responseCtrl *controller.ResponseController,
	engagementCtrl *controller.EngagementController,
	tagCtrl *controller.TagController,
	adminCtrl *adminctrl.UserAdminController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)

		formsGroup := api.Group("/forms")
		formsGroup.POST("", formCtrl.Create)
		formsGroup.GET("/latest", formCtrl.Latest)
		formsGroup.GET("/popular", formCtrl.Popular)
		formsGroup.GET("/search", formCtrl.Search)
		formsGroup.GET("/slug/:page_id", formCtrl.GetByPageID)
		formsGroup.GET("/user/:user_id", formCtrl.GetByCreator)
		formsGroup.PUT("/:form_id", formCtrl.Edit)
		formsGroup.DELETE("/:form_id", formCtrl.Delete)
		formsGroup.GET("/:form_id/responses", responseCtrl.GetFormResponses)

		responsesGroup := api.Group("/responses")
		responsesGroup.POST("", responseCtrl.Submit)
		responsesGroup.GET("/user/:user_id", responseCtrl.GetUserSubmissions)
		responsesGroup.DELETE("/user/:user_id", responseCtrl.DeleteUserSubmissions)
		responsesGroup.GET("/:filled_form_id", responseCtrl.GetSubmission)

		likesGroup := api.Group("/likes")
		likesGroup.GET("/check", engagementCtrl.CheckLike)
		likesGroup.POST("", engagementCtrl.Like)
		likesGroup.DELETE("", engagementCtrl.Unlike)

		commentsGroup := api.Group("/comments")
		commentsGroup.POST("", engagementCtrl.AddComment)
		commentsGroup.DELETE("/:comment_id", engagementCtrl.DeleteComment)
		commentsGroup.GET("/form/:form_id", engagementCtrl.GetComments)

		tagsGroup := api.Group("/tags")
		tagsGroup.GET("", tagCtrl.List)
		tagsGroup.GET("/search", tagCtrl.Search)
		tagsGroup.GET("/:tag_id/forms", tagCtrl.Forms)

		adminGroup := api.Group("/admin")
		adminGroup.GET("/users", adminCtrl.ListUsers)
		adminGroup.GET("/users/search", adminCtrl.SearchUsers)
		adminGroup.POST("/users/action", adminCtrl.ApplyAction)
		adminGroup.DELETE("/users", adminCtrl.DeleteUsers)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("FormHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Form{},
		&model.Question{},
		&model.AnswerOption{},
		&model.Tag{},
		&model.FormTag{},
		&model.AccessGrant{},
		&model.FilledForm{},
		&model.Answer{},
		&model.Like{},
		&model.Comment{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
