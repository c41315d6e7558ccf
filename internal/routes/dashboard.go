package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/internal/services"
)

func runDashboardRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewDashboardRepository(dbConn, logger)
	svc := services.NewDashboardService(repo, logger)
	ctrl := controllers.NewDashboardController(svc, logger)

	secureGroup.GET("/dashboard", ctrl.GetDashboard)
}
