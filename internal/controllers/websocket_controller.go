package controllers

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"valilik-yonetim/pkg/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Ekranlar iç ağdan bağlanır; origin kontrolü CORS katmanına bırakılmıştır.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketController struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewWebSocketController(hub *websocket.Hub, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{hub: hub, logger: logger}
}

// ServeMakamEkran, bir makam ekranını kalıcı WebSocket bağlantısına yükseltir.
func (c *WebSocketController) ServeMakamEkran(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("WebSocket bağlantısı yükseltilemedi", zap.Error(err))
		return err
	}

	client := websocket.NewClient(c.hub, conn, c.logger)
	c.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	return nil
}
