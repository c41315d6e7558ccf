package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateZiyaretciDTO struct {
	AdSoyad       string `json:"ad_soyad" validate:"required"`
	Kurum         string `json:"kurum"`
	ZiyaretNedeni string `json:"ziyaret_nedeni"`
	GorusulenKisi string `json:"gorusulen_kisi"`
	Tarih         string `json:"tarih" validate:"required,tarih_format"`
	GirisSaati    string `json:"giris_saati" validate:"omitempty,saat_format"`
	CikisSaati    string `json:"cikis_saati" validate:"omitempty,saat_format"`
	Notlar        string `json:"notlar"`
}

func (d CreateZiyaretciDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"ad_soyad":       d.AdSoyad,
		"kurum":          d.Kurum,
		"ziyaret_nedeni": d.ZiyaretNedeni,
		"gorusulen_kisi": d.GorusulenKisi,
		"tarih":          d.Tarih,
		"giris_saati":    d.GirisSaati,
		"cikis_saati":    d.CikisSaati,
		"notlar":         d.Notlar,
	}
}

type UpdateZiyaretciDTO struct {
	AdSoyad       null.String `json:"ad_soyad,omitempty"`
	Kurum         null.String `json:"kurum,omitempty"`
	ZiyaretNedeni null.String `json:"ziyaret_nedeni,omitempty"`
	GorusulenKisi null.String `json:"gorusulen_kisi,omitempty"`
	Tarih         null.String `json:"tarih,omitempty" validate:"omitempty,tarih_format"`
	GirisSaati    null.String `json:"giris_saati,omitempty" validate:"omitempty,saat_format"`
	CikisSaati    null.String `json:"cikis_saati,omitempty" validate:"omitempty,saat_format"`
	Notlar        null.String `json:"notlar,omitempty"`
}

func (d UpdateZiyaretciDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "ad_soyad", d.AdSoyad)
	putString(values, "kurum", d.Kurum)
	putString(values, "ziyaret_nedeni", d.ZiyaretNedeni)
	putString(values, "gorusulen_kisi", d.GorusulenKisi)
	putString(values, "tarih", d.Tarih)
	putString(values, "giris_saati", d.GirisSaati)
	putString(values, "cikis_saati", d.CikisSaati)
	putString(values, "notlar", d.Notlar)
	return values
}
