package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/zldymlg/soccom-lineup/cmd/fx/account_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/announcement_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/auth_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/controllers_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/db_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/files_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/lineup_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/logger_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/mail_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/memcache_fx"
	"github.com/zldymlg/soccom-lineup/cmd/fx/storage_fx"
	"github.com/zldymlg/soccom-lineup/internal/api/controllers"
	dbm "github.com/zldymlg/soccom-lineup/internal/models/db_models"
	"github.com/zldymlg/soccom-lineup/pkg/middleware"
	"github.com/zldymlg/soccom-lineup/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	registerValidators()

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,

		auth_fx.Module,
		account_fx.Module,
		lineup_fx.Module,
		announcement_fx.Module,
		files_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// mass_date and mass_time must parse before anything reaches storage
	_ = v.RegisterValidation("massdate", func(fl validator.FieldLevel) bool {
		return utils.IsValidMassDate(fl.Field().String())
	})
	_ = v.RegisterValidation("masstime", func(fl validator.FieldLevel) bool {
		return utils.IsValidMassTime(fl.Field().String())
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	lineupController *controllers.LineupController,
	announcementController *controllers.AnnouncementController,
	filesController *controllers.FilesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, accountController, lineupController, announcementController, filesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	lineupController *controllers.LineupController,
	announcementController *controllers.AnnouncementController,
	filesController *controllers.FilesController) {

	auth := r.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/forgot-password", authController.ForgotPassword)
	auth.POST("/verify-reset-code", authController.VerifyResetCode)
	auth.POST("/reset-password", authController.ResetPassword)

	authed := auth.Group("", middleware.JWTAuthMiddleware())
	authed.POST("/logout", authController.Logout)
	authed.GET("/me", authController.Me)

	accounts := r.Group("/accounts",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(dbm.RoleAdmin, dbm.RoleSoccom))
	accounts.GET("", accountController.List)
	accounts.POST("", accountController.Create)
	accounts.PUT("/:id", accountController.Update)
	accounts.DELETE("/:id", accountController.Delete)

	lineups := r.Group("/lineups", middleware.JWTAuthMiddleware())
	lineups.GET("/board", lineupController.Board)
	lineups.GET("/:id", lineupController.View)
	lineups.POST("", lineupController.Submit)
	lineups.PUT("/:id", lineupController.EditSubmission)

	adminLineups := lineups.Group("", middleware.RoleMiddleware(dbm.RoleAdmin, dbm.RoleSoccom))
	adminLineups.PUT("/:id/approval", lineupController.EditApproval)
	adminLineups.POST("/approve-next", lineupController.ApproveNext)

	announcements := r.Group("/announcements", middleware.JWTAuthMiddleware())
	announcements.GET("", announcementController.List)

	adminAnnouncements := announcements.Group("", middleware.RoleMiddleware(dbm.RoleAdmin, dbm.RoleSoccom))
	adminAnnouncements.POST("", announcementController.Create)
	adminAnnouncements.DELETE("/:id", announcementController.Delete)

	files := r.Group("/files", middleware.JWTAuthMiddleware())
	files.GET("", filesController.Browse)
}
