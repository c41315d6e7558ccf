package entities

import "time"

// SehitGaziAilesi, şehit yakını ve gazi ailelerinin takip kaydıdır.
type SehitGaziAilesi struct {
	ID           uint64    `json:"id"`
	AdSoyad      string    `json:"ad_soyad"`
	Yakinlik     string    `json:"yakinlik"`
	SehitGaziAdi string    `json:"sehit_gazi_adi"`
	Tur          string    `json:"tur"`
	Telefon      string    `json:"telefon"`
	Adres        string    `json:"adres"`
	Ilce         string    `json:"ilce"`
	Notlar       string    `json:"notlar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
