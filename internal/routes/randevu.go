package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/services"
)

func runRandevuRouter(
	secureGroup *echo.Group,
	randevuService services.RandevuServiceInterface,
	talimatService services.TalimatServiceInterface,
	logger *zap.Logger,
) {
	ctrl := controllers.NewRandevuController(randevuService, talimatService, logger)

	randevular := secureGroup.Group("/randevular")
	randevular.GET("", ctrl.GetRandevular)
	randevular.GET("/:id", ctrl.FindRandevu)
	randevular.GET("/:id/talimatlar", ctrl.GetRandevuTalimatlari)
	randevular.POST("", ctrl.CreateRandevu)
	randevular.PUT("/:id", ctrl.UpdateRandevu)
	randevular.DELETE("/:id", ctrl.DeleteRandevu)
}
