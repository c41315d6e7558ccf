package entities

import "time"

// Talimat, havale edilen bir randevudan türetilen veya elle açılan takip emridir.
// RandevuID, otomatik üretilen kayıtlarda kaynak randevuyu gösterir; şema
// düzeyinde cascade yoktur, eşitleme randevu servisinde yapılır.
type Talimat struct {
	ID        uint64    `json:"id"`
	Konu      string    `json:"konu"`
	Veren     string    `json:"veren"`
	Kurum     string    `json:"kurum"`
	Icerik    string    `json:"icerik"`
	Durum     string    `json:"durum"`
	Onem      string    `json:"onem"`
	Tarih     string    `json:"tarih"`
	RandevuID *uint64   `json:"randevu_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
