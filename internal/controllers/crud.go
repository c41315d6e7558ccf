package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/services"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/utils"
)

// CrudMessages, modülün başarı mesajlarını taşır. Her modül kendi Türkçe
// mesajlarını verir, handler gövdesi ortaktır.
type CrudMessages struct {
	Listed  string
	Found   string
	Created string
	Updated string
	Deleted string
}

// CrudController, özel davranışı olmayan modüllerin ortak HTTP katmanıdır.
// C ve U tipleri gövdeden bağlanıp doğrulanır; Columns() çıktısı servise geçer.
type CrudController[T any, C dto.ColumnMapper, U dto.ColumnMapper] struct {
	service  services.CrudServiceInterface[T]
	messages CrudMessages
	logger   *zap.Logger
}

func NewCrudController[T any, C dto.ColumnMapper, U dto.ColumnMapper](
	service services.CrudServiceInterface[T],
	messages CrudMessages,
	logger *zap.Logger,
) *CrudController[T, C, U] {
	return &CrudController[T, C, U]{service: service, messages: messages, logger: logger}
}

// parseID, :id parametresini çözer; hata mesajı tüm modüllerde aynıdır.
func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Geçersiz ID",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}

func (c *CrudController[T, C, U]) List(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	items, total, err := c.service.List(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, items, c.messages.Listed, http.StatusOK, total)
}

func (c *CrudController[T, C, U]) Find(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.Find(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, item, c.messages.Found, http.StatusOK)
}

func (c *CrudController[T, C, U]) Create(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload C
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "İstek gövdesi çözümlenemedi", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.Create(reqCtx, payload.Columns())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, item, c.messages.Created, http.StatusCreated)
}

func (c *CrudController[T, C, U]) Update(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload U
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "İstek gövdesi çözümlenemedi", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.Update(reqCtx, id, payload.Columns())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, item, c.messages.Updated, http.StatusOK)
}

func (c *CrudController[T, C, U]) Delete(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.Delete(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, c.messages.Deleted, http.StatusOK)
}
