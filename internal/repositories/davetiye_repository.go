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

var davetiyeDescriptor = TableDescriptor{
	Table: "davetiyeler",
	SelectColumns: []string{
		"id", "baslik", "davet_eden_kurum", "tarih", "saat", "yer",
		"katilim_durumu", "temsilci_adi", "dosya_yolu", "notlar",
		"created_at", "updated_at",
	},
	SearchColumns: []string{"baslik", "davet_eden_kurum", "yer"},
	FilterColumns: map[string]string{
		"katilim_durumu": "katilim_durumu",
		"tarih":          "tarih",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"tarih":      "tarih",
		"created_at": "created_at",
	},
	DefaultOrder: "tarih DESC",
}

func scanDavetiye(row pgx.Row) (*entities.Davetiye, error) {
	var d entities.Davetiye
	err := row.Scan(
		&d.ID, &d.Baslik, &d.DavetEdenKurum, &d.Tarih, &d.Saat, &d.Yer,
		&d.KatilimDurumu, &d.TemsilciAdi, &d.DosyaYolu, &d.Notlar,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("davetiye satırı okunamadı: %w", err)
	}
	return &d, nil
}

func NewDavetiyeRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Davetiye] {
	return NewCrudRepository(storage, davetiyeDescriptor, scanDavetiye, logger)
}
