package repositories

import (
	"context"
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

var izinDescriptor = TableDescriptor{
	Table: "izinler",
	SelectColumns: []string{
		"id", "personel_id", "izin_turu", "baslangic_tarihi", "bitis_tarihi",
		"gun_sayisi", "kalan_izin", "aciklama", "durum", "created_at", "updated_at",
	},
	SearchColumns: []string{"izin_turu", "aciklama"},
	FilterColumns: map[string]string{
		"personel_id": "personel_id",
		"izin_turu":   "izin_turu",
		"durum":       "durum",
	},
	SortColumns: map[string]string{
		"id":               "id",
		"baslangic_tarihi": "baslangic_tarihi",
		"created_at":       "created_at",
	},
	DefaultOrder: "baslangic_tarihi DESC",
}

func scanIzin(row pgx.Row) (*entities.Izin, error) {
	var i entities.Izin
	var baslangic, bitis time.Time
	err := row.Scan(
		&i.ID, &i.PersonelID, &i.IzinTuru, &baslangic, &bitis,
		&i.GunSayisi, &i.KalanIzin, &i.Aciklama, &i.Durum, &i.CreatedAt, &i.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("izin satırı okunamadı: %w", err)
	}
	i.BaslangicTarihi = baslangic.Format(constants.TarihFormat)
	i.BitisTarihi = bitis.Format(constants.TarihFormat)
	return &i, nil
}

type IzinRepositoryInterface interface {
	CrudRepositoryInterface[entities.Izin]
	// UsedDaysInYear, personelin verilen yıl içinde başlayan izinlerinin
	// toplam gün sayısını döner.
	UsedDaysInYear(ctx context.Context, personelID uint64, year int) (int, error)
}

type IzinRepository struct {
	*CrudRepository[entities.Izin]
	storage *pgxpool.Pool
}

func NewIzinRepository(storage *pgxpool.Pool, logger *zap.Logger) IzinRepositoryInterface {
	return &IzinRepository{
		CrudRepository: NewCrudRepository(storage, izinDescriptor, scanIzin, logger),
		storage:        storage,
	}
}

func (r *IzinRepository) UsedDaysInYear(ctx context.Context, personelID uint64, year int) (int, error) {
	const query = `
		SELECT COALESCE(SUM(gun_sayisi), 0)
		FROM izinler
		WHERE personel_id = $1 AND EXTRACT(YEAR FROM baslangic_tarihi) = $2`

	var total int
	if err := r.storage.QueryRow(ctx, query, personelID, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("kullanılan izin günleri sorgulanamadı: %w", err)
	}
	return total, nil
}
