package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedPersoneller(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM personeller").Scan(&count); err != nil {
		return fmt.Errorf("personel tablosu sayılamadı: %w", err)
	}
	if count > 0 {
		log.Println("  - Personel kayıtları mevcut, atlanıyor")
		return nil
	}

	personeller := []struct {
		adSoyad, sicilNo, birim, unvan string
	}{
		{"Ayşe Demir", "P-1001", "Yazı İşleri Müdürlüğü", "Şef"},
		{"Mehmet Kaya", "P-1002", "İdari Hizmetler", "Memur"},
		{"Fatma Çelik", "P-1003", "Özel Kalem", "Uzman"},
	}

	for _, p := range personeller {
		_, err := db.Exec(ctx, `
			INSERT INTO personeller (ad_soyad, sicil_no, birim, unvan, yillik_izin_hakki, durum)
			VALUES ($1, $2, $3, $4, 20, 'Aktif')`,
			p.adSoyad, p.sicilNo, p.birim, p.unvan,
		)
		if err != nil {
			return fmt.Errorf("personel kaydı eklenemedi (%s): %w", p.adSoyad, err)
		}
	}

	log.Printf("  - %d personel kaydı eklendi\n", len(personeller))
	return nil
}

func seedRandevular(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM randevular").Scan(&count); err != nil {
		return fmt.Errorf("randevu tablosu sayılamadı: %w", err)
	}
	if count > 0 {
		log.Println("  - Randevu kayıtları mevcut, atlanıyor")
		return nil
	}

	randevular := []struct {
		adSoyad, kurum, amac, saat string
	}{
		{"Ali Yılmaz", "Muhtarlar Derneği", "Mahalle sorunları görüşmesi", "09:30"},
		{"Zeynep Arslan", "İl Sağlık Müdürlüğü", "Hastane yatırımı brifingi", "10:30"},
		{"Hasan Koç", "Esnaf Odası", "Esnaf destekleri talebi", "14:00"},
	}

	for _, r := range randevular {
		_, err := db.Exec(ctx, `
			INSERT INTO randevular (ad_soyad, kurum, amac, tarih, saat, durum, talep_kaynagi)
			VALUES ($1, $2, $3, CURRENT_DATE, $4, 'Bekliyor', 'Telefon')`,
			r.adSoyad, r.kurum, r.amac, r.saat,
		)
		if err != nil {
			return fmt.Errorf("randevu kaydı eklenemedi (%s): %w", r.adSoyad, err)
		}
	}

	log.Printf("  - %d randevu kaydı eklendi\n", len(randevular))
	return nil
}
