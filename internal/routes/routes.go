package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/internal/services"
	"valilik-yonetim/pkg/config"
	"valilik-yonetim/pkg/eventbus"
	"valilik-yonetim/pkg/filestorage"
	"valilik-yonetim/pkg/middleware"
	"valilik-yonetim/pkg/service"
	"valilik-yonetim/pkg/websocket"
)

// InitRouter tüm HTTP uçlarını kurar. Kimlik doğrulaması istemeyen uçlar
// (login, makam ekranı, websocket) api grubunda, kalan her şey secure grubundadır.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	hub *websocket.Hub,
	bus *eventbus.Bus,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath)
	if err != nil {
		logger.Fatal("Dosya deposu oluşturulamadı", zap.Error(err))
	}

	// Birden fazla modülün paylaştığı repository ve servisler.
	randevuRepo := repositories.NewRandevuRepository(dbConn, logger)
	talimatRepo := repositories.NewTalimatRepository(dbConn, logger)
	personelRepo := repositories.NewPersonelRepository(dbConn, logger)

	randevuService := services.NewRandevuService(randevuRepo, talimatRepo, bus, logger)
	talimatService := services.NewTalimatService(talimatRepo, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, dbConn, redisClient, jwtSvc, logger, cfg)
	runMakamEkranRouter(api, randevuService, hub, logger)

	runRandevuRouter(secureGroup, randevuService, talimatService, logger)
	runTalimatRouter(secureGroup, talimatService, logger)
	runAracRouter(secureGroup, dbConn, logger)
	runEvrakRouter(secureGroup, dbConn, logger)
	runPersonelRouter(secureGroup, personelRepo, logger)
	runIzinRouter(secureGroup, dbConn, personelRepo, logger)
	runRezervasyonRouter(secureGroup, dbConn, logger)
	runDavetiyeRouter(secureGroup, dbConn, logger)
	runZiyaretciRouter(secureGroup, dbConn, logger)
	runSehitGaziRouter(secureGroup, dbConn, logger)
	runEnvanterRouter(secureGroup, dbConn, logger)
	runGunlukProgramRouter(secureGroup, dbConn, logger)
	runReportRouter(secureGroup, randevuRepo, logger)
	runDashboardRouter(secureGroup, dbConn, logger)
	runUploadRouter(secureGroup, fileStorage, logger)

	logger.Info("Tüm rotalar kuruldu")
}

// registerCrudRoutes, standart beş CRUD ucunu gruba bağlar.
func registerCrudRoutes[T any, C dto.ColumnMapper, U dto.ColumnMapper](
	g *echo.Group,
	ctrl *controllers.CrudController[T, C, U],
) {
	g.GET("", ctrl.List)
	g.GET("/:id", ctrl.Find)
	g.POST("", ctrl.Create)
	g.PUT("/:id", ctrl.Update)
	g.DELETE("/:id", ctrl.Delete)
}
