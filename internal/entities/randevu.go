package entities

import "time"

// Randevu, vatandaş veya kurumların makamla görüşme talebidir.
// Tarih alanı gün hassasiyetinde tutulur ve "2006-01-02" biçiminde serileştirilir.
type Randevu struct {
	ID              uint64 `json:"id"`
	AdSoyad         string `json:"ad_soyad"`
	Kurum           string `json:"kurum"`
	Unvan           string `json:"unvan"`
	Telefon         string `json:"telefon"`
	Amac            string `json:"amac"`
	Tarih           string `json:"tarih"`
	Saat            string `json:"saat"`
	Durum           string `json:"durum"`
	Notlar          string `json:"notlar"`
	SonucNotlari    string `json:"sonuc_notlari"`
	TalepKaynagi    string `json:"talep_kaynagi"`
	KatilimciSayisi int    `json:"katilimci_sayisi"`

	// Havale / yönlendirme alanları
	HavaleBirimi       string `json:"havale_birimi"`
	HavaleNedeni       string `json:"havale_nedeni"`
	RedNedeni          string `json:"red_nedeni"`
	YonlendirilenBirim string `json:"yonlendirilen_birim"`
	YonlendirmeNedeni  string `json:"yonlendirme_nedeni"`
	IptalNedeni        string `json:"iptal_nedeni"`
	HediyeNotu         string `json:"hediye_notu"`
	AracPlaka          string `json:"arac_plaka"`

	// Ziyaret günü zaman takibi
	GirisTarihi           string `json:"giris_tarihi"`
	GirisSaati            string `json:"giris_saati"`
	GorusmeBaslangicSaati string `json:"gorusme_baslangic_saati"`
	CikisSaati            string `json:"cikis_saati"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
