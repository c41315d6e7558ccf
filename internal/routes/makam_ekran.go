package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/internal/controllers"
	"valilik-yonetim/internal/services"
	"valilik-yonetim/pkg/websocket"
)

// Makam ekranı uçları kimlik doğrulaması istemez; bekleme salonundaki
// ekranlar doğrudan bağlanır.
func runMakamEkranRouter(
	api *echo.Group,
	randevuService services.RandevuServiceInterface,
	hub *websocket.Hub,
	logger *zap.Logger,
) {
	ekranCtrl := controllers.NewMakamEkranController(randevuService, logger)
	wsCtrl := controllers.NewWebSocketController(hub, logger)

	api.GET("/makam-ekran", ekranCtrl.GetBugunkuRandevular)
	api.GET("/ws/makam-ekran", wsCtrl.ServeMakamEkran)
}
