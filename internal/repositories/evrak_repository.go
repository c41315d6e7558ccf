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

var evrakDescriptor = TableDescriptor{
	Table: "evraklar",
	SelectColumns: []string{
		"id", "sayi_no", "konu", "tur", "geldigi_kurum", "gonderilen_birim",
		"havale_edilen", "tarih", "durum", "dosya_yolu", "aciklama",
		"created_at", "updated_at",
	},
	SearchColumns: []string{"sayi_no", "konu", "geldigi_kurum", "havale_edilen"},
	FilterColumns: map[string]string{
		"tur":   "tur",
		"durum": "durum",
		"tarih": "tarih",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"tarih":      "tarih",
		"created_at": "created_at",
	},
	DefaultOrder: "id DESC",
}

func scanEvrak(row pgx.Row) (*entities.Evrak, error) {
	var e entities.Evrak
	err := row.Scan(
		&e.ID, &e.SayiNo, &e.Konu, &e.Tur, &e.GeldigiKurum, &e.GonderilenBirim,
		&e.HavaleEdilen, &e.Tarih, &e.Durum, &e.DosyaYolu, &e.Aciklama,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("evrak satırı okunamadı: %w", err)
	}
	return &e, nil
}

func NewEvrakRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Evrak] {
	return NewCrudRepository(storage, evrakDescriptor, scanEvrak, logger)
}
