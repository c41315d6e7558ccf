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

func runEnvanterRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewEnvanterRepository(dbConn, logger)
	svc := services.NewCrudService[entities.Envanter](repo, logger)
	ctrl := controllers.NewCrudController[entities.Envanter, dto.CreateEnvanterDTO, dto.UpdateEnvanterDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Envanter listesi getirildi",
			Found:   "Envanter kaydı bulundu",
			Created: "Envanter kaydı oluşturuldu",
			Updated: "Envanter kaydı güncellendi",
			Deleted: "Envanter kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/envanter"), ctrl)
}
