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

const randevuTable = "randevular"

var randevuColumns = []string{
	"id", "ad_soyad", "kurum", "unvan", "telefon", "amac", "tarih", "saat",
	"durum", "notlar", "sonuc_notlari", "talep_kaynagi", "katilimci_sayisi",
	"havale_birimi", "havale_nedeni", "red_nedeni", "yonlendirilen_birim",
	"yonlendirme_nedeni", "iptal_nedeni", "hediye_notu", "arac_plaka",
	"giris_tarihi", "giris_saati", "gorusme_baslangic_saati", "cikis_saati",
	"created_at", "updated_at",
}

var randevuDescriptor = TableDescriptor{
	Table:         randevuTable,
	SelectColumns: randevuColumns,
	SearchColumns: []string{"ad_soyad", "kurum", "amac", "telefon"},
	FilterColumns: map[string]string{
		"durum":         "durum",
		"tarih":         "tarih",
		"talep_kaynagi": "talep_kaynagi",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"tarih":      "tarih",
		"saat":       "saat",
		"created_at": "created_at",
	},
	DefaultOrder: "tarih DESC, saat ASC",
}

func scanRandevu(row pgx.Row) (*entities.Randevu, error) {
	var r entities.Randevu
	var tarih time.Time
	err := row.Scan(
		&r.ID, &r.AdSoyad, &r.Kurum, &r.Unvan, &r.Telefon, &r.Amac, &tarih, &r.Saat,
		&r.Durum, &r.Notlar, &r.SonucNotlari, &r.TalepKaynagi, &r.KatilimciSayisi,
		&r.HavaleBirimi, &r.HavaleNedeni, &r.RedNedeni, &r.YonlendirilenBirim,
		&r.YonlendirmeNedeni, &r.IptalNedeni, &r.HediyeNotu, &r.AracPlaka,
		&r.GirisTarihi, &r.GirisSaati, &r.GorusmeBaslangicSaati, &r.CikisSaati,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("randevu satırı okunamadı: %w", err)
	}
	r.Tarih = tarih.Format(constants.TarihFormat)
	return &r, nil
}

type RandevuRepositoryInterface interface {
	CrudRepositoryInterface[entities.Randevu]
	// HasSlotConflict, verilen (tarih, saat) ikilisinde excludeID dışında bir
	// randevu olup olmadığını söyler.
	HasSlotConflict(ctx context.Context, tarih string, saat string, excludeID uint64) (bool, error)
	// ListToday, makam ekranı için bugünün randevularını saat sırasıyla döner.
	ListToday(ctx context.Context) ([]entities.Randevu, error)
}

type RandevuRepository struct {
	*CrudRepository[entities.Randevu]
	storage *pgxpool.Pool
}

func NewRandevuRepository(storage *pgxpool.Pool, logger *zap.Logger) RandevuRepositoryInterface {
	return &RandevuRepository{
		CrudRepository: NewCrudRepository(storage, randevuDescriptor, scanRandevu, logger),
		storage:        storage,
	}
}

func (r *RandevuRepository) HasSlotConflict(ctx context.Context, tarih string, saat string, excludeID uint64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM randevular WHERE tarih = $1 AND saat = $2 AND id <> $3)`

	var exists bool
	if err := r.storage.QueryRow(ctx, query, tarih, saat, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("randevu çakışma sorgusu başarısız: %w", err)
	}
	return exists, nil
}

func (r *RandevuRepository) ListToday(ctx context.Context) ([]entities.Randevu, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM randevular WHERE tarih = CURRENT_DATE ORDER BY saat ASC`,
		columnList(randevuColumns),
	)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("bugünkü randevular sorgulanamadı: %w", err)
	}
	defer rows.Close()

	randevular := make([]entities.Randevu, 0)
	for rows.Next() {
		randevu, err := scanRandevu(rows)
		if err != nil {
			return nil, err
		}
		randevular = append(randevular, *randevu)
	}
	return randevular, rows.Err()
}
