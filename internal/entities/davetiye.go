package entities

import "time"

// Davetiye, valiliğe gelen resmi davetlerin kaydıdır.
type Davetiye struct {
	ID             uint64    `json:"id"`
	Baslik         string    `json:"baslik"`
	DavetEdenKurum string    `json:"davet_eden_kurum"`
	Tarih          string    `json:"tarih"`
	Saat           string    `json:"saat"`
	Yer            string    `json:"yer"`
	KatilimDurumu  string    `json:"katilim_durumu"`
	TemsilciAdi    string    `json:"temsilci_adi"`
	DosyaYolu      string    `json:"dosya_yolu"`
	Notlar         string    `json:"notlar"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
