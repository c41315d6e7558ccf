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

func runSehitGaziRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewSehitGaziRepository(dbConn, logger)
	svc := services.NewCrudService[entities.SehitGaziAilesi](repo, logger)
	ctrl := controllers.NewCrudController[entities.SehitGaziAilesi, dto.CreateSehitGaziDTO, dto.UpdateSehitGaziDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Şehit/Gazi ailesi listesi getirildi",
			Found:   "Aile kaydı bulundu",
			Created: "Aile kaydı oluşturuldu",
			Updated: "Aile kaydı güncellendi",
			Deleted: "Aile kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/sehit-gazi-aileleri"), ctrl)
}
