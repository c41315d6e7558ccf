package entities

import "time"

// Evrak, gelen veya giden resmi yazıdır.
type Evrak struct {
	ID              uint64    `json:"id"`
	SayiNo          string    `json:"sayi_no"`
	Konu            string    `json:"konu"`
	Tur             string    `json:"tur"`
	GeldigiKurum    string    `json:"geldigi_kurum"`
	GonderilenBirim string    `json:"gonderilen_birim"`
	HavaleEdilen    string    `json:"havale_edilen"`
	Tarih           string    `json:"tarih"`
	Durum           string    `json:"durum"`
	DosyaYolu       string    `json:"dosya_yolu"`
	Aciklama        string    `json:"aciklama"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
