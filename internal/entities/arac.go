package entities

import "time"

// Arac, valilik filosundaki bir taşıttır.
type Arac struct {
	ID            uint64    `json:"id"`
	Plaka         string    `json:"plaka"`
	Marka         string    `json:"marka"`
	Model         string    `json:"model"`
	Yil           int       `json:"yil"`
	Tip           string    `json:"tip"`
	Durum         string    `json:"durum"`
	SoforAdi      string    `json:"sofor_adi"`
	TahsisliBirim string    `json:"tahsisli_birim"`
	MuayeneTarihi string    `json:"muayene_tarihi"`
	SigortaTarihi string    `json:"sigorta_tarihi"`
	Notlar        string    `json:"notlar"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
