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

var rezervasyonDescriptor = TableDescriptor{
	Table: "salon_rezervasyonlari",
	SelectColumns: []string{
		"id", "salon_adi", "tarih", "baslangic_saati", "bitis_saati",
		"toplanti_konusu", "talep_eden_birim", "katilimci_sayisi", "durum",
		"notlar", "created_at", "updated_at",
	},
	SearchColumns: []string{"salon_adi", "toplanti_konusu", "talep_eden_birim"},
	FilterColumns: map[string]string{
		"salon_adi": "salon_adi",
		"durum":     "durum",
		"tarih":     "tarih",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"tarih":      "tarih",
		"created_at": "created_at",
	},
	DefaultOrder: "tarih DESC, baslangic_saati ASC",
}

func scanRezervasyon(row pgx.Row) (*entities.SalonRezervasyon, error) {
	var s entities.SalonRezervasyon
	err := row.Scan(
		&s.ID, &s.SalonAdi, &s.Tarih, &s.BaslangicSaati, &s.BitisSaati,
		&s.ToplantiKonusu, &s.TalepEdenBirim, &s.KatilimciSayisi, &s.Durum,
		&s.Notlar, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rezervasyon satırı okunamadı: %w", err)
	}
	return &s, nil
}

func NewRezervasyonRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.SalonRezervasyon] {
	return NewCrudRepository(storage, rezervasyonDescriptor, scanRezervasyon, logger)
}
