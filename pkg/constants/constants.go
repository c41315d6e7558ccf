package constants

// --- TALİMAT SABİTLERİ ---
const (
	TalimatDurumBeklemede = "Beklemede"
	TalimatOnemNormal     = "Normal"
	TalimatVeren          = "Vali"

	// Havale üzerine otomatik üretilen talimatların içeriğine eklenen not.
	TalimatSistemNotu = "(Bu talimat, randevunun ilgili birime havalesi üzerine sistem tarafından oluşturulmuştur.)"

	// Ad ve amaç boşsa talimat konusu için kullanılan yer tutucu.
	TalimatVarsayilanKonu = "Randevu Talebi"
)

// --- TARİH / SAAT FORMATLARI ---
const (
	TarihFormat = "2006-01-02"
	SaatFormat  = "15:04"
)

// --- KULLANICI ROLLERİ ---
const (
	RolAdmin     = "admin"
	RolKullanici = "kullanici"
)
