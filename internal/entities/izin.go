package entities

import "time"

// Izin, bir personelin izin kaydıdır. GunSayisi ve KalanIzin kayıt anında
// hesaplanıp satıra yazılır.
type Izin struct {
	ID              uint64    `json:"id"`
	PersonelID      uint64    `json:"personel_id"`
	IzinTuru        string    `json:"izin_turu"`
	BaslangicTarihi string    `json:"baslangic_tarihi"`
	BitisTarihi     string    `json:"bitis_tarihi"`
	GunSayisi       int       `json:"gun_sayisi"`
	KalanIzin       int       `json:"kalan_izin"`
	Aciklama        string    `json:"aciklama"`
	Durum           string    `json:"durum"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
