package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEnvanterDTO struct {
	Ad           string `json:"ad" validate:"required"`
	Kategori     string `json:"kategori"`
	Marka        string `json:"marka"`
	SeriNo       string `json:"seri_no"`
	Birim        string `json:"birim"`
	ZimmetliKisi string `json:"zimmetli_kisi"`
	Adet         int    `json:"adet" validate:"omitempty,min=1"`
	Durum        string `json:"durum"`
	Notlar       string `json:"notlar"`
}

func (d CreateEnvanterDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"ad":            d.Ad,
		"kategori":      d.Kategori,
		"marka":         d.Marka,
		"seri_no":       d.SeriNo,
		"birim":         d.Birim,
		"zimmetli_kisi": d.ZimmetliKisi,
		"adet":          d.Adet,
		"durum":         d.Durum,
		"notlar":        d.Notlar,
	}
}

type UpdateEnvanterDTO struct {
	Ad           null.String `json:"ad,omitempty"`
	Kategori     null.String `json:"kategori,omitempty"`
	Marka        null.String `json:"marka,omitempty"`
	SeriNo       null.String `json:"seri_no,omitempty"`
	Birim        null.String `json:"birim,omitempty"`
	ZimmetliKisi null.String `json:"zimmetli_kisi,omitempty"`
	Adet         null.Int    `json:"adet,omitempty"`
	Durum        null.String `json:"durum,omitempty"`
	Notlar       null.String `json:"notlar,omitempty"`
}

func (d UpdateEnvanterDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "ad", d.Ad)
	putString(values, "kategori", d.Kategori)
	putString(values, "marka", d.Marka)
	putString(values, "seri_no", d.SeriNo)
	putString(values, "birim", d.Birim)
	putString(values, "zimmetli_kisi", d.ZimmetliKisi)
	putInt(values, "adet", d.Adet)
	putString(values, "durum", d.Durum)
	putString(values, "notlar", d.Notlar)
	return values
}
