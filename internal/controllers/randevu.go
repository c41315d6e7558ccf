package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/services"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/utils"
)

type RandevuController struct {
	randevuService services.RandevuServiceInterface
	talimatService services.TalimatServiceInterface
	logger         *zap.Logger
}

func NewRandevuController(
	randevuService services.RandevuServiceInterface,
	talimatService services.TalimatServiceInterface,
	logger *zap.Logger,
) *RandevuController {
	return &RandevuController{
		randevuService: randevuService,
		talimatService: talimatService,
		logger:         logger,
	}
}

func (c *RandevuController) GetRandevular(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	randevular, total, err := c.randevuService.List(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, randevular, "Randevu listesi getirildi", http.StatusOK, total)
}

func (c *RandevuController) FindRandevu(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	randevu, err := c.randevuService.Find(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, randevu, "Randevu bulundu", http.StatusOK)
}

func (c *RandevuController) CreateRandevu(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateRandevuDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "İstek gövdesi çözümlenemedi", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	randevu, err := c.randevuService.Create(reqCtx, payload.Columns())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, randevu, "Randevu oluşturuldu", http.StatusCreated)
}

// UpdateRandevu kısmi güncellemedir; durum değişikliğinde talimat eşitlemesi ve
// bildirim servis katmanında tetiklenir.
func (c *RandevuController) UpdateRandevu(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRandevuDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "İstek gövdesi çözümlenemedi", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	randevu, err := c.randevuService.Update(reqCtx, id, payload.Columns())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, randevu, "Randevu güncellendi", http.StatusOK)
}

func (c *RandevuController) DeleteRandevu(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.randevuService.Delete(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Randevu silindi", http.StatusOK)
}

// GetRandevuTalimatlari, randevuya bağlı (otomatik üretilmiş) talimatları döner.
func (c *RandevuController) GetRandevuTalimatlari(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	talimatlar, err := c.talimatService.ListByRandevuID(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, talimatlar, "Randevuya bağlı talimatlar getirildi", http.StatusOK)
}
