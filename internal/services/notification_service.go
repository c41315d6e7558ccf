package services

import (
	"context"

	"go.uber.org/zap"

	"valilik-yonetim/pkg/eventbus"
	"valilik-yonetim/pkg/websocket"
)

// NotificationService, randevu durum değişikliklerini dinleyip makam
// ekranlarına yayınlar. Olay yoluyla çağrıldığı için buradaki hiçbir hata
// asıl isteğe yansımaz.
type NotificationService struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewNotificationService(hub *websocket.Hub, logger *zap.Logger) *NotificationService {
	return &NotificationService{hub: hub, logger: logger}
}

// RegisterListeners, servisi olay yoluna abone eder. Uygulama açılışında bir
// kez çağrılır.
func (s *NotificationService) RegisterListeners(bus *eventbus.Bus) {
	bus.Subscribe(EventRandevuDurumDegisti, s.handleRandevuDurumDegisti)
}

func (s *NotificationService) handleRandevuDurumDegisti(ctx context.Context, event eventbus.Event) error {
	durumEvent, ok := event.(RandevuDurumEvent)
	if !ok {
		return nil
	}

	s.logger.Info("Randevu durumu değişti",
		zap.Uint64("randevu_id", durumEvent.RandevuID),
		zap.String("ad_soyad", durumEvent.AdSoyad),
		zap.String("eski_durum", durumEvent.EskiDurum),
		zap.String("yeni_durum", durumEvent.YeniDurum),
	)

	return s.hub.Broadcast(websocket.MessageTypeRandevuDurum, durumEvent)
}
