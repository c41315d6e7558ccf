package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateSehitGaziDTO struct {
	AdSoyad      string `json:"ad_soyad" validate:"required"`
	Yakinlik     string `json:"yakinlik"`
	SehitGaziAdi string `json:"sehit_gazi_adi"`
	Tur          string `json:"tur" validate:"required,oneof=Şehit Gazi"`
	Telefon      string `json:"telefon" validate:"omitempty,tr_telefon"`
	Adres        string `json:"adres"`
	Ilce         string `json:"ilce"`
	Notlar       string `json:"notlar"`
}

func (d CreateSehitGaziDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"ad_soyad":       d.AdSoyad,
		"yakinlik":       d.Yakinlik,
		"sehit_gazi_adi": d.SehitGaziAdi,
		"tur":            d.Tur,
		"telefon":        d.Telefon,
		"adres":          d.Adres,
		"ilce":           d.Ilce,
		"notlar":         d.Notlar,
	}
}

type UpdateSehitGaziDTO struct {
	AdSoyad      null.String `json:"ad_soyad,omitempty"`
	Yakinlik     null.String `json:"yakinlik,omitempty"`
	SehitGaziAdi null.String `json:"sehit_gazi_adi,omitempty"`
	Tur          null.String `json:"tur,omitempty" validate:"omitempty,oneof=Şehit Gazi"`
	Telefon      null.String `json:"telefon,omitempty" validate:"omitempty,tr_telefon"`
	Adres        null.String `json:"adres,omitempty"`
	Ilce         null.String `json:"ilce,omitempty"`
	Notlar       null.String `json:"notlar,omitempty"`
}

func (d UpdateSehitGaziDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "ad_soyad", d.AdSoyad)
	putString(values, "yakinlik", d.Yakinlik)
	putString(values, "sehit_gazi_adi", d.SehitGaziAdi)
	putString(values, "tur", d.Tur)
	putString(values, "telefon", d.Telefon)
	putString(values, "adres", d.Adres)
	putString(values, "ilce", d.Ilce)
	putString(values, "notlar", d.Notlar)
	return values
}
