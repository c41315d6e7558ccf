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

func runZiyaretciRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewZiyaretciRepository(dbConn, logger)
	svc := services.NewCrudService[entities.Ziyaretci](repo, logger)
	ctrl := controllers.NewCrudController[entities.Ziyaretci, dto.CreateZiyaretciDTO, dto.UpdateZiyaretciDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Ziyaretçi listesi getirildi",
			Found:   "Ziyaretçi kaydı bulundu",
			Created: "Ziyaretçi kaydı oluşturuldu",
			Updated: "Ziyaretçi kaydı güncellendi",
			Deleted: "Ziyaretçi kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/ziyaretciler"), ctrl)
}
