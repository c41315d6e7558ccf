package entities

import "time"

// GunlukProgram, makamın gün içi etkinlik çizelgesidir.
type GunlukProgram struct {
	ID             uint64    `json:"id"`
	Tarih          string    `json:"tarih"`
	BaslangicSaati string    `json:"baslangic_saati"`
	BitisSaati     string    `json:"bitis_saati"`
	Etkinlik       string    `json:"etkinlik"`
	Yer            string    `json:"yer"`
	Durum          string    `json:"durum"`
	Aciklama       string    `json:"aciklama"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
