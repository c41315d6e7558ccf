package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/internal/services"
	"valilik-yonetim/pkg/config"
	"valilik-yonetim/pkg/service"
)

func runAuthRouter(
	api *echo.Group,
	secureGroup *echo.Group,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	userRepo := repositories.NewUserRepository(dbConn, logger)
	sessionRepo := repositories.NewRedisSessionRepository(redisClient)
	authService := services.NewAuthService(userRepo, sessionRepo, jwtSvc, cfg.Auth, logger)
	ctrl := controllers.NewAuthController(authService, logger)

	// Login ve token yenileme oturum istemez.
	auth := api.Group("/auth")
	auth.POST("/login", ctrl.Login)
	auth.POST("/refresh", ctrl.RefreshToken)

	secureAuth := secureGroup.Group("/auth")
	secureAuth.POST("/logout", ctrl.Logout)
	secureAuth.GET("/profile", ctrl.Profile)
}
