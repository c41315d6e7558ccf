package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"valilik-yonetim/internal/dto"
)

type DashboardRepositoryInterface interface {
	CountTable(ctx context.Context, table string) (uint64, error)
	RandevuDurumDagilimi(ctx context.Context) ([]dto.DurumSayisiDTO, error)
	BugunkuRandevuSayisi(ctx context.Context) (uint64, error)
	BugunkuZiyaretciSayisi(ctx context.Context) (uint64, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) CountTable(ctx context.Context, table string) (uint64, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s tablosu sayılamadı: %w", table, err)
	}
	return total, nil
}

func (r *DashboardRepository) RandevuDurumDagilimi(ctx context.Context) ([]dto.DurumSayisiDTO, error) {
	query, args, err := psql.Select("durum", "COUNT(*)").
		From("randevular").
		GroupBy("durum").
		OrderBy("COUNT(*) DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("randevu durum dağılımı sorgulanamadı: %w", err)
	}
	defer rows.Close()

	dagilim := make([]dto.DurumSayisiDTO, 0)
	for rows.Next() {
		var d dto.DurumSayisiDTO
		if err := rows.Scan(&d.Durum, &d.Sayi); err != nil {
			return nil, err
		}
		dagilim = append(dagilim, d)
	}
	return dagilim, rows.Err()
}

func (r *DashboardRepository) BugunkuRandevuSayisi(ctx context.Context) (uint64, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("randevular").
		Where(sq.Expr("tarih = CURRENT_DATE")).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("bugünkü randevu sayısı sorgulanamadı: %w", err)
	}
	return total, nil
}

func (r *DashboardRepository) BugunkuZiyaretciSayisi(ctx context.Context) (uint64, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("ziyaretciler").
		Where(sq.Expr("tarih = CURRENT_DATE")).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("bugünkü ziyaretçi sayısı sorgulanamadı: %w", err)
	}
	return total, nil
}
