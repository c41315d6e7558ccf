package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/services"
	"valilik-yonetim/pkg/utils"
)

// MakamEkranController, bekleme salonundaki ekranlara bugünün randevularını
// sunar. Uç nokta kimlik doğrulaması istemez; ekranlar oturum açamaz.
type MakamEkranController struct {
	randevuService services.RandevuServiceInterface
	logger         *zap.Logger
}

func NewMakamEkranController(randevuService services.RandevuServiceInterface, logger *zap.Logger) *MakamEkranController {
	return &MakamEkranController{randevuService: randevuService, logger: logger}
}

func (c *MakamEkranController) GetBugunkuRandevular(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	randevular, err := c.randevuService.ListToday(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, randevular, "Bugünkü randevular getirildi", http.StatusOK)
}
