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

func runEvrakRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewEvrakRepository(dbConn, logger)
	svc := services.NewCrudService[entities.Evrak](repo, logger)
	ctrl := controllers.NewCrudController[entities.Evrak, dto.CreateEvrakDTO, dto.UpdateEvrakDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Evrak listesi getirildi",
			Found:   "Evrak bulundu",
			Created: "Evrak kaydı oluşturuldu",
			Updated: "Evrak kaydı güncellendi",
			Deleted: "Evrak kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/evraklar"), ctrl)
}
