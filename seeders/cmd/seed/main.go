package main

import (
	"flag"
	"log"

	"valilik-yonetim/pkg/config"
	"valilik-yonetim/pkg/database/postgresql"
	"valilik-yonetim/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Veritabanı Tohumlama (Seed)                 ")
	log.Println("======================================================")

	runAdmin := flag.Bool("admin", false, "Yönetici hesabını oluştur")
	runDemo := flag.Bool("demo", false, "Örnek verileri yükle")
	runAll := flag.Bool("all", false, "Tüm seederleri çalıştır")

	flag.Parse()

	if !*runAdmin && !*runDemo && !*runAll {
		log.Println("❌ Çalıştırılacak seeder seçilmedi.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Örnek kullanım:")
		log.Println("  go run ./seeders/cmd/seed -admin")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool, cfg)
	}
	if *runAll || *runDemo {
		seeders.SeedDemoData(dbPool)
	}

	log.Println("======================================================")
	log.Println("🏁 Tohumlama tamamlandı")
}
