package postgresql

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectDB(dsn string) *pgxpool.Pool {
	dbpool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Veritabanı bağlantı havuzu oluşturulamadı: %v", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Veritabanına ulaşılamadı: %v", err)
	}

	log.Println("✅ PostgreSQL bağlantısı kuruldu")
	return dbpool
}
