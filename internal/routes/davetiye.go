package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/internal/services"
)

func runDavetiyeRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewDavetiyeRepository(dbConn, logger)
	svc := services.NewCrudService[entities.Davetiye](repo, logger)
	ctrl := controllers.NewCrudController[entities.Davetiye, dto.CreateDavetiyeDTO, dto.UpdateDavetiyeDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Davetiye listesi getirildi",
			Found:   "Davetiye bulundu",
			Created: "Davetiye kaydı oluşturuldu",
			Updated: "Davetiye kaydı güncellendi",
			Deleted: "Davetiye kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/davetiyeler"), ctrl)
}
