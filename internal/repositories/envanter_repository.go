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

var envanterDescriptor = TableDescriptor{
	Table: "envanter",
	SelectColumns: []string{
		"id", "ad", "kategori", "marka", "seri_no", "birim", "zimmetli_kisi",
		"adet", "durum", "notlar", "created_at", "updated_at",
	},
	SearchColumns: []string{"ad", "seri_no", "zimmetli_kisi"},
	FilterColumns: map[string]string{
		"kategori": "kategori",
		"birim":    "birim",
		"durum":    "durum",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"ad":         "ad",
		"created_at": "created_at",
	},
	DefaultOrder: "id DESC",
}

func scanEnvanter(row pgx.Row) (*entities.Envanter, error) {
	var e entities.Envanter
	err := row.Scan(
		&e.ID, &e.Ad, &e.Kategori, &e.Marka, &e.SeriNo, &e.Birim, &e.ZimmetliKisi,
		&e.Adet, &e.Durum, &e.Notlar, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("envanter satırı okunamadı: %w", err)
	}
	return &e, nil
}

func NewEnvanterRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Envanter] {
	return NewCrudRepository(storage, envanterDescriptor, scanEnvanter, logger)
}
