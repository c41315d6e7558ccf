package dto

import (
	"github.com/aarondl/null/v8"
)

type CreatePersonelDTO struct {
	AdSoyad         string `json:"ad_soyad" validate:"required"`
	SicilNo         string `json:"sicil_no" validate:"required"`
	Birim           string `json:"birim"`
	Unvan           string `json:"unvan"`
	Telefon         string `json:"telefon" validate:"omitempty,tr_telefon"`
	Eposta          string `json:"eposta" validate:"omitempty,email"`
	YillikIzinHakki int    `json:"yillik_izin_hakki" validate:"omitempty,min=0,max=90"`
	Durum           string `json:"durum"`
}

func (d CreatePersonelDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"ad_soyad":          d.AdSoyad,
		"sicil_no":          d.SicilNo,
		"birim":             d.Birim,
		"unvan":             d.Unvan,
		"telefon":           d.Telefon,
		"eposta":            d.Eposta,
		"yillik_izin_hakki": d.YillikIzinHakki,
		"durum":             d.Durum,
	}
}

type UpdatePersonelDTO struct {
	AdSoyad         null.String `json:"ad_soyad,omitempty"`
	SicilNo         null.String `json:"sicil_no,omitempty"`
	Birim           null.String `json:"birim,omitempty"`
	Unvan           null.String `json:"unvan,omitempty"`
	Telefon         null.String `json:"telefon,omitempty" validate:"omitempty,tr_telefon"`
	Eposta          null.String `json:"eposta,omitempty" validate:"omitempty,email"`
	YillikIzinHakki null.Int    `json:"yillik_izin_hakki,omitempty"`
	Durum           null.String `json:"durum,omitempty"`
}

func (d UpdatePersonelDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "ad_soyad", d.AdSoyad)
	putString(values, "sicil_no", d.SicilNo)
	putString(values, "birim", d.Birim)
	putString(values, "unvan", d.Unvan)
	putString(values, "telefon", d.Telefon)
	putString(values, "eposta", d.Eposta)
	putInt(values, "yillik_izin_hakki", d.YillikIzinHakki)
	putString(values, "durum", d.Durum)
	return values
}
