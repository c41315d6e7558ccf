package main

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"valilik-yonetim/internal/routes"
	"valilik-yonetim/internal/services"
	"valilik-yonetim/pkg/config"
	"valilik-yonetim/pkg/customvalidator"
	"valilik-yonetim/pkg/database/postgresql"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/eventbus"
	applogger "valilik-yonetim/pkg/logger"
	"valilik-yonetim/pkg/middleware"
	"valilik-yonetim/pkg/service"
	"valilik-yonetim/pkg/utils"
	"valilik-yonetim/pkg/websocket"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Panik yakalandı",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Sunucuda beklenmeyen bir hata oluştu", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Use(middleware.RequestLogger(logger))

	// Yüklenen dosyalar doğrudan sunulur.
	absPath, err := filepath.Abs(cfg.Upload.BasePath)
	if err != nil {
		logger.Fatal("Upload dizininin mutlak yolu alınamadı", zap.Error(err))
	}
	e.Static("/uploads", absPath)

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Özel doğrulama kuralları kaydedilemedi", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("Redis bağlantısı kurulamadı", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	// Makam ekranı yayını ve olay yolu.
	hub := websocket.NewHub(logger)
	go hub.Run()

	bus := eventbus.New(logger)
	notificationService := services.NewNotificationService(hub, logger)
	notificationService.RegisterListeners(bus)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, hub, bus, logger, cfg)

	logger.Info("Sunucu başlatılıyor", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
