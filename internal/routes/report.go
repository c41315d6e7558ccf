package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/internal/services"
)

func runReportRouter(
	secureGroup *echo.Group,
	randevuRepo repositories.RandevuRepositoryInterface,
	logger *zap.Logger,
) {
	reportService := services.NewReportService(randevuRepo, logger)
	ctrl := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/raporlar/randevular", ctrl.GetRandevuReport)
}
