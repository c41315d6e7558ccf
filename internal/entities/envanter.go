package entities

import "time"

type Envanter struct {
	ID           uint64    `json:"id"`
	Ad           string    `json:"ad"`
	Kategori     string    `json:"kategori"`
	Marka        string    `json:"marka"`
	SeriNo       string    `json:"seri_no"`
	Birim        string    `json:"birim"`
	ZimmetliKisi string    `json:"zimmetli_kisi"`
	Adet         int       `json:"adet"`
	Durum        string    `json:"durum"`
	Notlar       string    `json:"notlar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
