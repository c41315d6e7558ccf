package services

// Olay adları. Dinleyiciler bu adlar üzerinden abone olur.
const (
	EventRandevuDurumDegisti = "randevu.durum_degisti"
)

// RandevuDurumEvent, bir randevunun durum alanı değiştiğinde yayınlanır.
// Bildirim servisi ve makam ekranı yayını bu olayı dinler.
type RandevuDurumEvent struct {
	RandevuID uint64 `json:"randevu_id"`
	AdSoyad   string `json:"ad_soyad"`
	EskiDurum string `json:"eski_durum"`
	YeniDurum string `json:"yeni_durum"`
	Tarih     string `json:"tarih"`
	Saat      string `json:"saat"`
}

func (e RandevuDurumEvent) Name() string { return EventRandevuDurumDegisti }
