package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	"valilik-yonetim/pkg/constants"
	apperrors "valilik-yonetim/pkg/errors"
)

var ziyaretciDescriptor = TableDescriptor{
	Table: "ziyaretciler",
	SelectColumns: []string{
		"id", "ad_soyad", "kurum", "ziyaret_nedeni", "gorusulen_kisi", "tarih",
		"giris_saati", "cikis_saati", "notlar", "created_at", "updated_at",
	},
	SearchColumns: []string{"ad_soyad", "kurum", "gorusulen_kisi"},
	FilterColumns: map[string]string{
		"tarih":          "tarih",
		"gorusulen_kisi": "gorusulen_kisi",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"tarih":      "tarih",
		"created_at": "created_at",
	},
	DefaultOrder: "id DESC",
}

func scanZiyaretci(row pgx.Row) (*entities.Ziyaretci, error) {
	var z entities.Ziyaretci
	var tarih time.Time
	err := row.Scan(
		&z.ID, &z.AdSoyad, &z.Kurum, &z.ZiyaretNedeni, &z.GorusulenKisi, &tarih,
		&z.GirisSaati, &z.CikisSaati, &z.Notlar, &z.CreatedAt, &z.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ziyaretçi satırı okunamadı: %w", err)
	}
	z.Tarih = tarih.Format(constants.TarihFormat)
	return &z, nil
}

func NewZiyaretciRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Ziyaretci] {
	return NewCrudRepository(storage, ziyaretciDescriptor, scanZiyaretci, logger)
}
