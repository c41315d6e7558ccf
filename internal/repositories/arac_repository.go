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

var aracDescriptor = TableDescriptor{
	Table: "araclar",
	SelectColumns: []string{
		"id", "plaka", "marka", "model", "yil", "tip", "durum", "sofor_adi",
		"tahsisli_birim", "muayene_tarihi", "sigorta_tarihi", "notlar",
		"created_at", "updated_at",
	},
	SearchColumns: []string{"plaka", "marka", "model", "sofor_adi"},
	FilterColumns: map[string]string{
		"durum":          "durum",
		"tip":            "tip",
		"tahsisli_birim": "tahsisli_birim",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"plaka":      "plaka",
		"created_at": "created_at",
	},
	DefaultOrder: "id DESC",
}

func scanArac(row pgx.Row) (*entities.Arac, error) {
	var a entities.Arac
	err := row.Scan(
		&a.ID, &a.Plaka, &a.Marka, &a.Model, &a.Yil, &a.Tip, &a.Durum, &a.SoforAdi,
		&a.TahsisliBirim, &a.MuayeneTarihi, &a.SigortaTarihi, &a.Notlar,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("araç satırı okunamadı: %w", err)
	}
	return &a, nil
}

func NewAracRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Arac] {
	return NewCrudRepository(storage, aracDescriptor, scanArac, logger)
}
