package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/services"
)

func runTalimatRouter(secureGroup *echo.Group, talimatService services.TalimatServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewCrudController[entities.Talimat, dto.CreateTalimatDTO, dto.UpdateTalimatDTO](
		talimatService,
		controllers.CrudMessages{
			Listed:  "Talimat listesi getirildi",
			Found:   "Talimat bulundu",
			Created: "Talimat oluşturuldu",
			Updated: "Talimat güncellendi",
			Deleted: "Talimat silindi",
		},
		logger,
	)

	registerCrudRoutes(secureGroup.Group("/talimatlar"), ctrl)
}
