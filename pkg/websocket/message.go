package websocket

import "time"

const (
	// Randevu durumu değiştiğinde ekranlara giden mesaj tipi.
	MessageTypeRandevuDurum = "randevu_durum_degisti"
)

type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}
