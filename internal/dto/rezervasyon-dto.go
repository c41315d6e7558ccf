package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateRezervasyonDTO struct {
	SalonAdi        string `json:"salon_adi" validate:"required"`
	Tarih           string `json:"tarih" validate:"required,tarih_format"`
	BaslangicSaati  string `json:"baslangic_saati" validate:"required,saat_format"`
	BitisSaati      string `json:"bitis_saati" validate:"required,saat_format"`
	ToplantiKonusu  string `json:"toplanti_konusu"`
	TalepEdenBirim  string `json:"talep_eden_birim"`
	KatilimciSayisi int    `json:"katilimci_sayisi" validate:"omitempty,min=1"`
	Durum           string `json:"durum"`
	Notlar          string `json:"notlar"`
}

func (d CreateRezervasyonDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"salon_adi":        d.SalonAdi,
		"tarih":            d.Tarih,
		"baslangic_saati":  d.BaslangicSaati,
		"bitis_saati":      d.BitisSaati,
		"toplanti_konusu":  d.ToplantiKonusu,
		"talep_eden_birim": d.TalepEdenBirim,
		"katilimci_sayisi": d.KatilimciSayisi,
		"durum":            d.Durum,
		"notlar":           d.Notlar,
	}
}

type UpdateRezervasyonDTO struct {
	SalonAdi        null.String `json:"salon_adi,omitempty"`
	Tarih           null.String `json:"tarih,omitempty" validate:"omitempty,tarih_format"`
	BaslangicSaati  null.String `json:"baslangic_saati,omitempty" validate:"omitempty,saat_format"`
	BitisSaati      null.String `json:"bitis_saati,omitempty" validate:"omitempty,saat_format"`
	ToplantiKonusu  null.String `json:"toplanti_konusu,omitempty"`
	TalepEdenBirim  null.String `json:"talep_eden_birim,omitempty"`
	KatilimciSayisi null.Int    `json:"katilimci_sayisi,omitempty"`
	Durum           null.String `json:"durum,omitempty"`
	Notlar          null.String `json:"notlar,omitempty"`
}

func (d UpdateRezervasyonDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "salon_adi", d.SalonAdi)
	putString(values, "tarih", d.Tarih)
	putString(values, "baslangic_saati", d.BaslangicSaati)
	putString(values, "bitis_saati", d.BitisSaati)
	putString(values, "toplanti_konusu", d.ToplantiKonusu)
	putString(values, "talep_eden_birim", d.TalepEdenBirim)
	putInt(values, "katilimci_sayisi", d.KatilimciSayisi)
	putString(values, "durum", d.Durum)
	putString(values, "notlar", d.Notlar)
	return values
}
