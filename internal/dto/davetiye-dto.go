package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateDavetiyeDTO struct {
	Baslik         string `json:"baslik" validate:"required"`
	DavetEdenKurum string `json:"davet_eden_kurum"`
	Tarih          string `json:"tarih" validate:"required,tarih_format"`
	Saat           string `json:"saat" validate:"omitempty,saat_format"`
	Yer            string `json:"yer"`
	KatilimDurumu  string `json:"katilim_durumu"`
	TemsilciAdi    string `json:"temsilci_adi"`
	DosyaYolu      string `json:"dosya_yolu"`
	Notlar         string `json:"notlar"`
}

func (d CreateDavetiyeDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"baslik":           d.Baslik,
		"davet_eden_kurum": d.DavetEdenKurum,
		"tarih":            d.Tarih,
		"saat":             d.Saat,
		"yer":              d.Yer,
		"katilim_durumu":   d.KatilimDurumu,
		"temsilci_adi":     d.TemsilciAdi,
		"dosya_yolu":       d.DosyaYolu,
		"notlar":           d.Notlar,
	}
}

type UpdateDavetiyeDTO struct {
	Baslik         null.String `json:"baslik,omitempty"`
	DavetEdenKurum null.String `json:"davet_eden_kurum,omitempty"`
	Tarih          null.String `json:"tarih,omitempty" validate:"omitempty,tarih_format"`
	Saat           null.String `json:"saat,omitempty" validate:"omitempty,saat_format"`
	Yer            null.String `json:"yer,omitempty"`
	KatilimDurumu  null.String `json:"katilim_durumu,omitempty"`
	TemsilciAdi    null.String `json:"temsilci_adi,omitempty"`
	DosyaYolu      null.String `json:"dosya_yolu,omitempty"`
	Notlar         null.String `json:"notlar,omitempty"`
}

func (d UpdateDavetiyeDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "baslik", d.Baslik)
	putString(values, "davet_eden_kurum", d.DavetEdenKurum)
	putString(values, "tarih", d.Tarih)
	putString(values, "saat", d.Saat)
	putString(values, "yer", d.Yer)
	putString(values, "katilim_durumu", d.KatilimDurumu)
	putString(values, "temsilci_adi", d.TemsilciAdi)
	putString(values, "dosya_yolu", d.DosyaYolu)
	putString(values, "notlar", d.Notlar)
	return values
}
