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

func runGunlukProgramRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewGunlukProgramRepository(dbConn, logger)
	svc := services.NewCrudService[entities.GunlukProgram](repo, logger)
	ctrl := controllers.NewCrudController[entities.GunlukProgram, dto.CreateGunlukProgramDTO, dto.UpdateGunlukProgramDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Günlük program getirildi",
			Found:   "Program kaydı bulundu",
			Created: "Program kaydı oluşturuldu",
			Updated: "Program kaydı güncellendi",
			Deleted: "Program kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/gunluk-program"), ctrl)
}
