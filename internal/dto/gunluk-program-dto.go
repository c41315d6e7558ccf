package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateGunlukProgramDTO struct {
	Tarih          string `json:"tarih" validate:"required,tarih_format"`
	BaslangicSaati string `json:"baslangic_saati" validate:"required,saat_format"`
	BitisSaati     string `json:"bitis_saati" validate:"omitempty,saat_format"`
	Etkinlik       string `json:"etkinlik" validate:"required"`
	Yer            string `json:"yer"`
	Durum          string `json:"durum"`
	Aciklama       string `json:"aciklama"`
}

func (d CreateGunlukProgramDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"tarih":           d.Tarih,
		"baslangic_saati": d.BaslangicSaati,
		"bitis_saati":     d.BitisSaati,
		"etkinlik":        d.Etkinlik,
		"yer":             d.Yer,
		"durum":           d.Durum,
		"aciklama":        d.Aciklama,
	}
}

type UpdateGunlukProgramDTO struct {
	Tarih          null.String `json:"tarih,omitempty" validate:"omitempty,tarih_format"`
	BaslangicSaati null.String `json:"baslangic_saati,omitempty" validate:"omitempty,saat_format"`
	BitisSaati     null.String `json:"bitis_saati,omitempty" validate:"omitempty,saat_format"`
	Etkinlik       null.String `json:"etkinlik,omitempty"`
	Yer            null.String `json:"yer,omitempty"`
	Durum          null.String `json:"durum,omitempty"`
	Aciklama       null.String `json:"aciklama,omitempty"`
}

func (d UpdateGunlukProgramDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "tarih", d.Tarih)
	putString(values, "baslangic_saati", d.BaslangicSaati)
	putString(values, "bitis_saati", d.BitisSaati)
	putString(values, "etkinlik", d.Etkinlik)
	putString(values, "yer", d.Yer)
	putString(values, "durum", d.Durum)
	putString(values, "aciklama", d.Aciklama)
	return values
}
