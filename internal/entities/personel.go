package entities

import "time"

type Personel struct {
	ID              uint64    `json:"id"`
	AdSoyad         string    `json:"ad_soyad"`
	SicilNo         string    `json:"sicil_no"`
	Birim           string    `json:"birim"`
	Unvan           string    `json:"unvan"`
	Telefon         string    `json:"telefon"`
	Eposta          string    `json:"eposta"`
	YillikIzinHakki int       `json:"yillik_izin_hakki"`
	Durum           string    `json:"durum"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
