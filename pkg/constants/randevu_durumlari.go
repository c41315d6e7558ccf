package constants

// --- RANDEVU DURUMLARI (Veritabanındaki değerlerle birebir aynı) ---
const (
	DurumBekliyor        = "Bekliyor"
	DurumOnaylandi       = "Onaylandı"
	DurumTamamlandi      = "Tamamlandı"
	DurumGorusuldu       = "Görüşüldü"
	DurumIptal           = "İptal"
	DurumBirimeHavale    = "Beklenen Birime Havale"
	DurumAltBirimeHavale = "Alt Birime Havale"
)

// Havale durumları: bu durumlara geçişte talimat kaydı üretilir,
// bu durumlardan çıkışta randevuya bağlı talimatlar silinir.
var HavaleDurumlari = []string{
	DurumBirimeHavale,
	DurumAltBirimeHavale,
}

func IsHavaleDurumu(durum string) bool {
	for _, d := range HavaleDurumlari {
		if d == durum {
			return true
		}
	}
	return false
}

var GecerliDurumlar = []string{
	DurumBekliyor,
	DurumOnaylandi,
	DurumTamamlandi,
	DurumGorusuldu,
	DurumIptal,
	DurumBirimeHavale,
	DurumAltBirimeHavale,
}
