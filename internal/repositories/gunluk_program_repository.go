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

var gunlukProgramDescriptor = TableDescriptor{
	Table: "gunluk_program",
	SelectColumns: []string{
		"id", "tarih", "baslangic_saati", "bitis_saati", "etkinlik", "yer",
		"durum", "aciklama", "created_at", "updated_at",
	},
	SearchColumns: []string{"etkinlik", "yer"},
	FilterColumns: map[string]string{
		"tarih": "tarih",
		"durum": "durum",
	},
	SortColumns: map[string]string{
		"id":    "id",
		"tarih": "tarih",
	},
	DefaultOrder: "tarih DESC, baslangic_saati ASC",
}

func scanGunlukProgram(row pgx.Row) (*entities.GunlukProgram, error) {
	var g entities.GunlukProgram
	err := row.Scan(
		&g.ID, &g.Tarih, &g.BaslangicSaati, &g.BitisSaati, &g.Etkinlik, &g.Yer,
		&g.Durum, &g.Aciklama, &g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("günlük program satırı okunamadı: %w", err)
	}
	return &g, nil
}

func NewGunlukProgramRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.GunlukProgram] {
	return NewCrudRepository(storage, gunlukProgramDescriptor, scanGunlukProgram, logger)
}
