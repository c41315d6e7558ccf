package entities

import "time"

type SalonRezervasyon struct {
	ID              uint64    `json:"id"`
	SalonAdi        string    `json:"salon_adi"`
	Tarih           string    `json:"tarih"`
	BaslangicSaati  string    `json:"baslangic_saati"`
	BitisSaati      string    `json:"bitis_saati"`
	ToplantiKonusu  string    `json:"toplanti_konusu"`
	TalepEdenBirim  string    `json:"talep_eden_birim"`
	KatilimciSayisi int       `json:"katilimci_sayisi"`
	Durum           string    `json:"durum"`
	Notlar          string    `json:"notlar"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
