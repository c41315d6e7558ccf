package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/internal/services"
)

func runPersonelRouter(
	secureGroup *echo.Group,
	personelRepo repositories.CrudRepositoryInterface[entities.Personel],
	logger *zap.Logger,
) {
	svc := services.NewCrudService[entities.Personel](personelRepo, logger)
	ctrl := controllers.NewCrudController[entities.Personel, dto.CreatePersonelDTO, dto.UpdatePersonelDTO](
		svc,
		controllers.CrudMessages{
			Listed:  "Personel listesi getirildi",
			Found:   "Personel bulundu",
			Created: "Personel kaydı oluşturuldu",
			Updated: "Personel kaydı güncellendi",
			Deleted: "Personel kaydı silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/personeller"), ctrl)
}
