package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	apperrors "valilik-yonetim/pkg/errors"
)

var sehitGaziDescriptor = TableDescriptor{
	Table: "sehit_gazi_aileleri",
	SelectColumns: []string{
		"id", "ad_soyad", "yakinlik", "sehit_gazi_adi", "tur", "telefon",
		"adres", "ilce", "notlar", "created_at", "updated_at",
	},
	SearchColumns: []string{"ad_soyad", "sehit_gazi_adi", "ilce"},
	FilterColumns: map[string]string{
		"tur":  "tur",
		"ilce": "ilce",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"ad_soyad":   "ad_soyad",
		"created_at": "created_at",
	},
	DefaultOrder: "ad_soyad ASC",
}

func scanSehitGaziAilesi(row pgx.Row) (*entities.SehitGaziAilesi, error) {
	var s entities.SehitGaziAilesi
	err := row.Scan(
		&s.ID, &s.AdSoyad, &s.Yakinlik, &s.SehitGaziAdi, &s.Tur, &s.Telefon,
		&s.Adres, &s.Ilce, &s.Notlar, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("şehit/gazi ailesi satırı okunamadı: %w", err)
	}
	return &s, nil
}

func NewSehitGaziRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.SehitGaziAilesi] {
	return NewCrudRepository(storage, sehitGaziDescriptor, scanSehitGaziAilesi, logger)
}
