package entities

import "time"

type Ziyaretci struct {
	ID            uint64    `json:"id"`
	AdSoyad       string    `json:"ad_soyad"`
	Kurum         string    `json:"kurum"`
	ZiyaretNedeni string    `json:"ziyaret_nedeni"`
	GorusulenKisi string    `json:"gorusulen_kisi"`
	Tarih         string    `json:"tarih"`
	GirisSaati    string    `json:"giris_saati"`
	CikisSaati    string    `json:"cikis_saati"`
	Notlar        string    `json:"notlar"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
