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

const talimatTable = "talimatlar"

var talimatColumns = []string{
	"id", "konu", "veren", "kurum", "icerik", "durum", "onem", "tarih",
	"randevu_id", "created_at", "updated_at",
}

var talimatDescriptor = TableDescriptor{
	Table:         talimatTable,
	SelectColumns: talimatColumns,
	SearchColumns: []string{"konu", "kurum", "icerik"},
	FilterColumns: map[string]string{
		"durum": "durum",
		"onem":  "onem",
		"kurum": "kurum",
	},
	SortColumns: map[string]string{
		"id":         "id",
		"tarih":      "tarih",
		"created_at": "created_at",
	},
	DefaultOrder: "id DESC",
}

func scanTalimat(row pgx.Row) (*entities.Talimat, error) {
	var t entities.Talimat
	var tarih time.Time
	err := row.Scan(
		&t.ID, &t.Konu, &t.Veren, &t.Kurum, &t.Icerik, &t.Durum, &t.Onem, &tarih,
		&t.RandevuID, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("talimat satırı okunamadı: %w", err)
	}
	t.Tarih = tarih.Format(constants.TarihFormat)
	return &t, nil
}

type TalimatRepositoryInterface interface {
	CrudRepositoryInterface[entities.Talimat]
	// DeleteByRandevuID, randevuya bağlı tüm talimatları siler.
	// Hiç kayıt olmaması hata değildir; silinen satır sayısı döner.
	DeleteByRandevuID(ctx context.Context, randevuID uint64) (int64, error)
	ListByRandevuID(ctx context.Context, randevuID uint64) ([]entities.Talimat, error)
}

type TalimatRepository struct {
	*CrudRepository[entities.Talimat]
	storage *pgxpool.Pool
}

func NewTalimatRepository(storage *pgxpool.Pool, logger *zap.Logger) TalimatRepositoryInterface {
	return &TalimatRepository{
		CrudRepository: NewCrudRepository(storage, talimatDescriptor, scanTalimat, logger),
		storage:        storage,
	}
}

func (r *TalimatRepository) DeleteByRandevuID(ctx context.Context, randevuID uint64) (int64, error) {
	tag, err := r.storage.Exec(ctx, `DELETE FROM talimatlar WHERE randevu_id = $1`, randevuID)
	if err != nil {
		return 0, fmt.Errorf("randevuya bağlı talimatlar silinemedi: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *TalimatRepository) ListByRandevuID(ctx context.Context, randevuID uint64) ([]entities.Talimat, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM talimatlar WHERE randevu_id = $1 ORDER BY id`,
		columnList(talimatColumns),
	)

	rows, err := r.storage.Query(ctx, query, randevuID)
	if err != nil {
		return nil, fmt.Errorf("randevuya bağlı talimatlar sorgulanamadı: %w", err)
	}
	defer rows.Close()

	talimatlar := make([]entities.Talimat, 0)
	for rows.Next() {
		talimat, err := scanTalimat(rows)
		if err != nil {
			return nil, err
		}
		talimatlar = append(talimatlar, *talimat)
	}
	return talimatlar, rows.Err()
}
