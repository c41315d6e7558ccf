package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEvrakDTO struct {
	SayiNo          string `json:"sayi_no" validate:"required"`
	Konu            string `json:"konu" validate:"required"`
	Tur             string `json:"tur" validate:"required,oneof=Gelen Giden"`
	GeldigiKurum    string `json:"geldigi_kurum"`
	GonderilenBirim string `json:"gonderilen_birim"`
	HavaleEdilen    string `json:"havale_edilen"`
	Tarih           string `json:"tarih" validate:"required,tarih_format"`
	Durum           string `json:"durum"`
	DosyaYolu       string `json:"dosya_yolu"`
	Aciklama        string `json:"aciklama"`
}

func (d CreateEvrakDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"sayi_no":          d.SayiNo,
		"konu":             d.Konu,
		"tur":              d.Tur,
		"geldigi_kurum":    d.GeldigiKurum,
		"gonderilen_birim": d.GonderilenBirim,
		"havale_edilen":    d.HavaleEdilen,
		"tarih":            d.Tarih,
		"durum":            d.Durum,
		"dosya_yolu":       d.DosyaYolu,
		"aciklama":         d.Aciklama,
	}
}

type UpdateEvrakDTO struct {
	SayiNo          null.String `json:"sayi_no,omitempty"`
	Konu            null.String `json:"konu,omitempty"`
	Tur             null.String `json:"tur,omitempty" validate:"omitempty,oneof=Gelen Giden"`
	GeldigiKurum    null.String `json:"geldigi_kurum,omitempty"`
	GonderilenBirim null.String `json:"gonderilen_birim,omitempty"`
	HavaleEdilen    null.String `json:"havale_edilen,omitempty"`
	Tarih           null.String `json:"tarih,omitempty" validate:"omitempty,tarih_format"`
	Durum           null.String `json:"durum,omitempty"`
	DosyaYolu       null.String `json:"dosya_yolu,omitempty"`
	Aciklama        null.String `json:"aciklama,omitempty"`
}

func (d UpdateEvrakDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "sayi_no", d.SayiNo)
	putString(values, "konu", d.Konu)
	putString(values, "tur", d.Tur)
	putString(values, "geldigi_kurum", d.GeldigiKurum)
	putString(values, "gonderilen_birim", d.GonderilenBirim)
	putString(values, "havale_edilen", d.HavaleEdilen)
	putString(values, "tarih", d.Tarih)
	putString(values, "durum", d.Durum)
	putString(values, "dosya_yolu", d.DosyaYolu)
	putString(values, "aciklama", d.Aciklama)
	return values
}
