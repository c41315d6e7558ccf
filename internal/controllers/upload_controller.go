package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/filestorage"
	"valilik-yonetim/pkg/utils"
)

// Yüklemenin hangi modül için yapıldığını söyleyen bağlamlar. Bağlam, dosyanın
// diskteki alt dizinini belirler.
var uploadContexts = map[string]bool{
	"evrak":    true,
	"davetiye": true,
}

type UploadController struct {
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewUploadController(fileStorage filestorage.FileStorageInterface, logger *zap.Logger) *UploadController {
	return &UploadController{fileStorage: fileStorage, logger: logger}
}

// Upload, multipart "file" alanını kaydeder ve istemciye göreli yolu döner.
// İstemci bu yolu ilgili kaydın dosya_yolu alanına yazar.
func (c *UploadController) Upload(ctx echo.Context) error {
	uploadContext := ctx.Param("context")
	if !uploadContexts[uploadContext] {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Bilinmeyen yükleme bağlamı",
				apperrors.ErrBadRequest,
				map[string]interface{}{"context": uploadContext},
			),
			c.logger,
		)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Dosya gönderilmedi", err, nil),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "Dosya açılamadı", err, nil),
			c.logger,
		)
	}
	defer src.Close()

	filePath, err := c.fileStorage.Save(src, fileHeader.Filename, uploadContext)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "Dosya kaydedilemedi", err, nil),
			c.logger,
		)
	}

	c.logger.Info("Dosya yüklendi",
		zap.String("context", uploadContext),
		zap.String("original", fileHeader.Filename),
		zap.String("path", filePath),
	)

	return utils.SuccessResponse(ctx, map[string]string{"dosya_yolu": filePath}, "Dosya yüklendi", http.StatusCreated)
}
