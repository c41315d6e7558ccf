package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateAracDTO struct {
	Plaka         string `json:"plaka" validate:"required,tr_plaka"`
	Marka         string `json:"marka"`
	Model         string `json:"model"`
	Yil           int    `json:"yil" validate:"omitempty,min=1950,max=2100"`
	Tip           string `json:"tip"`
	Durum         string `json:"durum"`
	SoforAdi      string `json:"sofor_adi"`
	TahsisliBirim string `json:"tahsisli_birim"`
	MuayeneTarihi string `json:"muayene_tarihi" validate:"omitempty,tarih_format"`
	SigortaTarihi string `json:"sigorta_tarihi" validate:"omitempty,tarih_format"`
	Notlar        string `json:"notlar"`
}

func (d CreateAracDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"plaka":          d.Plaka,
		"marka":          d.Marka,
		"model":          d.Model,
		"yil":            d.Yil,
		"tip":            d.Tip,
		"durum":          d.Durum,
		"sofor_adi":      d.SoforAdi,
		"tahsisli_birim": d.TahsisliBirim,
		"muayene_tarihi": d.MuayeneTarihi,
		"sigorta_tarihi": d.SigortaTarihi,
		"notlar":         d.Notlar,
	}
}

type UpdateAracDTO struct {
	Plaka         null.String `json:"plaka,omitempty" validate:"omitempty,tr_plaka"`
	Marka         null.String `json:"marka,omitempty"`
	Model         null.String `json:"model,omitempty"`
	Yil           null.Int    `json:"yil,omitempty"`
	Tip           null.String `json:"tip,omitempty"`
	Durum         null.String `json:"durum,omitempty"`
	SoforAdi      null.String `json:"sofor_adi,omitempty"`
	TahsisliBirim null.String `json:"tahsisli_birim,omitempty"`
	MuayeneTarihi null.String `json:"muayene_tarihi,omitempty" validate:"omitempty,tarih_format"`
	SigortaTarihi null.String `json:"sigorta_tarihi,omitempty" validate:"omitempty,tarih_format"`
	Notlar        null.String `json:"notlar,omitempty"`
}

func (d UpdateAracDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "plaka", d.Plaka)
	putString(values, "marka", d.Marka)
	putString(values, "model", d.Model)
	putInt(values, "yil", d.Yil)
	putString(values, "tip", d.Tip)
	putString(values, "durum", d.Durum)
	putString(values, "sofor_adi", d.SoforAdi)
	putString(values, "tahsisli_birim", d.TahsisliBirim)
	putString(values, "muayene_tarihi", d.MuayeneTarihi)
	putString(values, "sigorta_tarihi", d.SigortaTarihi)
	putString(values, "notlar", d.Notlar)
	return values
}
