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

var personelDescriptor = TableDescriptor{
	Table: "personeller",
	SelectColumns: []string{
		"id", "ad_soyad", "sicil_no", "birim", "unvan", "telefon", "eposta",
		"yillik_izin_hakki", "durum", "created_at", "updated_at",
	},
	SearchColumns: []string{"ad_soyad", "sicil_no", "unvan"},
	FilterColumns: map[string]string{
		"birim": "birim",
		"durum": "durum",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"ad_soyad":   "ad_soyad",
		"created_at": "created_at",
	},
	DefaultOrder: "ad_soyad ASC",
}

func scanPersonel(row pgx.Row) (*entities.Personel, error) {
	var p entities.Personel
	err := row.Scan(
		&p.ID, &p.AdSoyad, &p.SicilNo, &p.Birim, &p.Unvan, &p.Telefon, &p.Eposta,
		&p.YillikIzinHakki, &p.Durum, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("personel satırı okunamadı: %w", err)
	}
	return &p, nil
}

func NewPersonelRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Personel] {
	return NewCrudRepository(storage, personelDescriptor, scanPersonel, logger)
}
