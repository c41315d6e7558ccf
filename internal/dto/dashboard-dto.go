package dto

type DurumSayisiDTO struct {
	Durum string `json:"durum"`
	Sayi  uint64 `json:"sayi"`
}

type DashboardDTO struct {
	ModulSayilari          map[string]uint64 `json:"modul_sayilari"`
	RandevuDurumDagilimi   []DurumSayisiDTO  `json:"randevu_durum_dagilimi"`
	BugunkuRandevuSayisi   uint64            `json:"bugunku_randevu_sayisi"`
	BugunkuZiyaretciSayisi uint64            `json:"bugunku_ziyaretci_sayisi"`
}
