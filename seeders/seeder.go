package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"valilik-yonetim/pkg/config"
)

// SeedAdmin, yönetici hesabını oluşturur. Hesap varsa dokunmaz.
func SeedAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("▶️  Yönetici hesabı kontrol ediliyor...")

	if err := seedAdminUser(ctx, db, cfg); err != nil {
		log.Fatalf("❌ Yönetici hesabı oluşturulamadı: %v", err)
	}

	log.Println("✅ Yönetici hesabı hazır")
}

// SeedDemoData, geliştirme ortamı için örnek kayıtlar üretir.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Örnek veriler yükleniyor...")

	if err := seedPersoneller(ctx, db); err != nil {
		log.Fatalf("❌ Personel örnekleri yüklenemedi: %v", err)
	}
	if err := seedRandevular(ctx, db); err != nil {
		log.Fatalf("❌ Randevu örnekleri yüklenemedi: %v", err)
	}

	log.Println("✅ Örnek veriler yüklendi")
}
