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

func runRezervasyonRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewRezervasyonRepository(dbConn, logger)
	svc := services.NewCrudService[entities.SalonRezervasyon](repo, logger)
	ctrl := controllers.NewCrudController[entities.SalonRezervasyon, dto.CreateRezervasyonDTO, dto.UpdateRezervasyonDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Rezervasyon listesi getirildi",
			Found:   "Rezervasyon bulundu",
			Created: "Rezervasyon oluşturuldu",
			Updated: "Rezervasyon güncellendi",
			Deleted: "Rezervasyon silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/rezervasyonlar"), ctrl)
}
