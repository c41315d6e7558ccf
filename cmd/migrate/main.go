package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"valilik-yonetim/pkg/config"
)

// Veritabanı şemasını goose ile yönetir.
//
//	go run ./cmd/migrate            -> tüm bekleyen migrasyonları uygular
//	go run ./cmd/migrate -command down   -> son migrasyonu geri alır
//	go run ./cmd/migrate -command status -> durum listesi
func main() {
	command := flag.String("command", "up", "goose komutu: up, down, status")
	dir := flag.String("dir", "migrations", "migrasyon dosyalarının dizini")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ Veritabanı bağlantısı açılamadı: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("❌ goose dialect ayarlanamadı: %v", err)
	}

	switch *command {
	case "up":
		err = goose.Up(db, *dir)
	case "down":
		err = goose.Down(db, *dir)
	case "status":
		err = goose.Status(db, *dir)
	default:
		log.Fatalf("❌ Bilinmeyen komut: %s", *command)
	}
	if err != nil {
		log.Fatalf("❌ Migrasyon başarısız: %v", err)
	}

	log.Println("✅ Migrasyon tamamlandı")
}
