package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateRandevuDTO struct {
	AdSoyad         string `json:"ad_soyad" validate:"required"`
	Kurum           string `json:"kurum"`
	Unvan           string `json:"unvan"`
	Telefon         string `json:"telefon" validate:"omitempty,tr_telefon"`
	Amac            string `json:"amac" validate:"required"`
	Tarih           string `json:"tarih" validate:"required,tarih_format"`
	Saat            string `json:"saat" validate:"required,saat_format"`
	Durum           string `json:"durum" validate:"omitempty,oneof=Bekliyor Onaylandı Tamamlandı Görüşüldü İptal 'Beklenen Birime Havale' 'Alt Birime Havale'"`
	Notlar          string `json:"notlar"`
	TalepKaynagi    string `json:"talep_kaynagi"`
	KatilimciSayisi int    `json:"katilimci_sayisi" validate:"omitempty,min=1"`
	AracPlaka       string `json:"arac_plaka" validate:"omitempty,tr_plaka"`
}

func (d CreateRandevuDTO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"ad_soyad":         d.AdSoyad,
		"kurum":            d.Kurum,
		"unvan":            d.Unvan,
		"telefon":          d.Telefon,
		"amac":             d.Amac,
		"tarih":            d.Tarih,
		"saat":             d.Saat,
		"durum":            d.Durum,
		"notlar":           d.Notlar,
		"talep_kaynagi":    d.TalepKaynagi,
		"katilimci_sayisi": d.KatilimciSayisi,
		"arac_plaka":       d.AracPlaka,
	}
}

// UpdateRandevuDTO kısmi günceller: yalnızca gönderilen alanlar satıra yazılır.
// Durum alanının gelmesi talimat eşitlemesini ve bildirimi tetikler.
type UpdateRandevuDTO struct {
	AdSoyad         null.String `json:"ad_soyad,omitempty"`
	Kurum           null.String `json:"kurum,omitempty"`
	Unvan           null.String `json:"unvan,omitempty"`
	Telefon         null.String `json:"telefon,omitempty" validate:"omitempty,tr_telefon"`
	Amac            null.String `json:"amac,omitempty"`
	Tarih           null.String `json:"tarih,omitempty" validate:"omitempty,tarih_format"`
	Saat            null.String `json:"saat,omitempty" validate:"omitempty,saat_format"`
	Durum           null.String `json:"durum,omitempty" validate:"omitempty,oneof=Bekliyor Onaylandı Tamamlandı Görüşüldü İptal 'Beklenen Birime Havale' 'Alt Birime Havale'"`
	Notlar          null.String `json:"notlar,omitempty"`
	SonucNotlari    null.String `json:"sonuc_notlari,omitempty"`
	TalepKaynagi    null.String `json:"talep_kaynagi,omitempty"`
	KatilimciSayisi null.Int    `json:"katilimci_sayisi,omitempty"`

	HavaleBirimi       null.String `json:"havale_birimi,omitempty"`
	HavaleNedeni       null.String `json:"havale_nedeni,omitempty"`
	RedNedeni          null.String `json:"red_nedeni,omitempty"`
	YonlendirilenBirim null.String `json:"yonlendirilen_birim,omitempty"`
	YonlendirmeNedeni  null.String `json:"yonlendirme_nedeni,omitempty"`
	IptalNedeni        null.String `json:"iptal_nedeni,omitempty"`
	HediyeNotu         null.String `json:"hediye_notu,omitempty"`
	AracPlaka          null.String `json:"arac_plaka,omitempty" validate:"omitempty,tr_plaka"`

	GirisTarihi           null.String `json:"giris_tarihi,omitempty" validate:"omitempty,tarih_format"`
	GirisSaati            null.String `json:"giris_saati,omitempty" validate:"omitempty,saat_format"`
	GorusmeBaslangicSaati null.String `json:"gorusme_baslangic_saati,omitempty" validate:"omitempty,saat_format"`
	CikisSaati            null.String `json:"cikis_saati,omitempty" validate:"omitempty,saat_format"`
}

func (d UpdateRandevuDTO) Columns() map[string]interface{} {
	values := make(map[string]interface{})
	putString(values, "ad_soyad", d.AdSoyad)
	putString(values, "kurum", d.Kurum)
	putString(values, "unvan", d.Unvan)
	putString(values, "telefon", d.Telefon)
	putString(values, "amac", d.Amac)
	putString(values, "tarih", d.Tarih)
	putString(values, "saat", d.Saat)
	putString(values, "durum", d.Durum)
	putString(values, "notlar", d.Notlar)
	putString(values, "sonuc_notlari", d.SonucNotlari)
	putString(values, "talep_kaynagi", d.TalepKaynagi)
	putInt(values, "katilimci_sayisi", d.KatilimciSayisi)
	putString(values, "havale_birimi", d.HavaleBirimi)
	putString(values, "havale_nedeni", d.HavaleNedeni)
	putString(values, "red_nedeni", d.RedNedeni)
	putString(values, "yonlendirilen_birim", d.YonlendirilenBirim)
	putString(values, "yonlendirme_nedeni", d.YonlendirmeNedeni)
	putString(values, "iptal_nedeni", d.IptalNedeni)
	putString(values, "hediye_notu", d.HediyeNotu)
	putString(values, "arac_plaka", d.AracPlaka)
	putString(values, "giris_tarihi", d.GirisTarihi)
	putString(values, "giris_saati", d.GirisSaati)
	putString(values, "gorusme_baslangic_saati", d.GorusmeBaslangicSaati)
	putString(values, "cikis_saati", d.CikisSaati)
	return values
}
