package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateTalimatDTO struct {
	Konu   string `json:"konu" validate:"required"`
	Veren  string `json:"veren"`
	Kurum  string `json:"kurum"`
	Icerik string `json:"icerik"`
	Durum  string `json:"durum" validate:"omitempty,oneof=Beklemede 'Devam Ediyor' Tamamlandı"`
	Onem   string `json:"onem" validate:"omitempty,oneof=Düşük Normal Yüksek Acil"`
	Tarih  string `json:"tarih" validate:"omitempty,tarih_format"`
}

func (d CreateTalimatDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"konu":   d.Konu,
		"veren":  d.Veren,
		"kurum":  d.Kurum,
		"icerik": d.Icerik,
		"durum":  d.Durum,
		"onem":   d.Onem,
		"tarih":  d.Tarih,
	}
}

type UpdateTalimatDTO struct {
	Konu   null.String `json:"konu,omitempty"`
	Veren  null.String `json:"veren,omitempty"`
	Kurum  null.String `json:"kurum,omitempty"`
	Icerik null.String `json:"icerik,omitempty"`
	Durum  null.String `json:"durum,omitempty" validate:"omitempty,oneof=Beklemede 'Devam Ediyor' Tamamlandı"`
	Onem   null.String `json:"onem,omitempty" validate:"omitempty,oneof=Düşük Normal Yüksek Acil"`
	Tarih  null.String `json:"tarih,omitempty" validate:"omitempty,tarih_format"`
}

func (d UpdateTalimatDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "konu", d.Konu)
	putString(values, "veren", d.Veren)
	putString(values, "kurum", d.Kurum)
	putString(values, "icerik", d.Icerik)
	putString(values, "durum", d.Durum)
	putString(values, "onem", d.Onem)
	putString(values, "tarih", d.Tarih)
	return values
}
