package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"valilik-yonetim/pkg/config"
	"valilik-yonetim/pkg/constants"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	eposta := cfg.Auth.AdminEmail

	var mevcutID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE eposta = $1", eposta).Scan(&mevcutID)
	if err == nil {
		log.Println("  - Yönetici hesabı zaten mevcut, atlanıyor")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("yönetici hesabı sorgulanamadı: %w", err)
	}

	if cfg.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD tanımlı değil, yönetici hesabı oluşturulamaz")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("şifre özetlenemedi: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (ad_soyad, eposta, sifre_hash, rol, aktif)
		VALUES ($1, $2, $3, $4, TRUE)`,
		"Sistem Yöneticisi", eposta, string(hash), constants.RolAdmin,
	)
	if err != nil {
		return fmt.Errorf("yönetici hesabı eklenemedi: %w", err)
	}

	log.Println("  - Yönetici hesabı oluşturuldu:", eposta)
	return nil
}
