package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateIzinDTO struct {
	PersonelID      uint64 `json:"personel_id" validate:"required"`
	IzinTuru        string `json:"izin_turu" validate:"required"`
	BaslangicTarihi string `json:"baslangic_tarihi" validate:"required,tarih_format"`
	BitisTarihi     string `json:"bitis_tarihi" validate:"required,tarih_format"`
	Aciklama        string `json:"aciklama"`
	Durum           string `json:"durum"`
}

// Columns gun_sayisi ve kalan_izin içermez; bu iki alan izin servisinde
// hesaplanıp haritaya eklenir.
func (d CreateIzinDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"personel_id":      d.PersonelID,
		"izin_turu":        d.IzinTuru,
		"baslangic_tarihi": d.BaslangicTarihi,
		"bitis_tarihi":     d.BitisTarihi,
		"aciklama":         d.Aciklama,
		"durum":            d.Durum,
	}
}

type UpdateIzinDTO struct {
	IzinTuru        null.String `json:"izin_turu,omitempty"`
	BaslangicTarihi null.String `json:"baslangic_tarihi,omitempty" validate:"omitempty,tarih_format"`
	BitisTarihi     null.String `json:"bitis_tarihi,omitempty" validate:"omitempty,tarih_format"`
	Aciklama        null.String `json:"aciklama,omitempty"`
	Durum           null.String `json:"durum,omitempty"`
}

func (d UpdateIzinDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "izin_turu", d.IzinTuru)
	putString(values, "baslangic_tarihi", d.BaslangicTarihi)
	putString(values, "bitis_tarihi", d.BitisTarihi)
	putString(values, "aciklama", d.Aciklama)
	putString(values, "durum", d.Durum)
	return values
}
