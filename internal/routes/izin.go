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

func runIzinRouter(
	secureGroup *echo.Group,
	dbConn *pgxpool.Pool,
	personelRepo repositories.CrudRepositoryInterface[entities.Personel],
	logger *zap.Logger,
) {
	repo := repositories.NewIzinRepository(dbConn, logger)
	svc := services.NewIzinService(repo, personelRepo, logger)
	ctrl := controllers.NewCrudController[entities.Izin, dto.CreateIzinDTO, dto.UpdateIzinDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "İzin listesi getirildi",
			Found:   "İzin kaydı bulundu",
			Created: "İzin kaydı oluşturuldu",
			Updated: "İzin kaydı güncellendi",
			Deleted: "İzin kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/izinler"), ctrl)
}
