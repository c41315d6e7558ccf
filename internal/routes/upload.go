package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/pkg/filestorage"
)

func runUploadRouter(secureGroup *echo.Group, fileStorage filestorage.FileStorageInterface, logger *zap.Logger) {
	ctrl := controllers.NewUploadController(fileStorage, logger)

	secureGroup.POST("/upload/:context", ctrl.Upload)
}
