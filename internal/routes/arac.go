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

func runAracRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewAracRepository(dbConn, logger)
	svc := services.NewCrudService[entities.Arac](repo, logger)
	ctrl := controllers.NewCrudController[entities.Arac, dto.CreateAracDTO, dto.UpdateAracDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Araç listesi getirildi",
			Found:   "Araç bulundu",
			Created: "Araç kaydı oluşturuldu",
			Updated: "Araç kaydı güncellendi",
			Deleted: "Araç kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/araclar"), ctrl)
}
