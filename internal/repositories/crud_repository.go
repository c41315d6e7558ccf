package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/types"
)

// TableDescriptor, bir modülün liste/filtre sözleşmesini tarif eder. Her CRUD
// modülü aynı deseni tekrarladığı için sorgu kurulumu tek yerde toplanmıştır;
// modüller sadece tablo adı, sütunlar ve izin verilen filtre/sıralama alanlarını verir.
type TableDescriptor struct {
	Table         string
	SelectColumns []string
	SearchColumns []string          // search parametresi bu sütunlarda ILIKE ile OR'lanır
	FilterColumns map[string]string // filter[alan] -> sütun; listede olmayan alanlar yok sayılır
	SortColumns   map[string]string // sort[alan] -> sütun
	DefaultOrder  string
}

type CrudRepositoryInterface[T any] interface {
	List(ctx context.Context, filter types.Filter) ([]T, uint64, error)
	Find(ctx context.Context, id uint64) (*T, error)
	Create(ctx context.Context, values map[string]interface{}) (*T, error)
	Update(ctx context.Context, id uint64, values map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uint64) error
}

type CrudRepository[T any] struct {
	storage *pgxpool.Pool
	desc    TableDescriptor
	scan    func(row pgx.Row) (*T, error)
	logger  *zap.Logger
}

func NewCrudRepository[T any](
	storage *pgxpool.Pool,
	desc TableDescriptor,
	scan func(row pgx.Row) (*T, error),
	logger *zap.Logger,
) *CrudRepository[T] {
	return &CrudRepository[T]{storage: storage, desc: desc, scan: scan, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}

func (r *CrudRepository[T]) buildConditions(filter types.Filter) []sq.Sqlizer {
	conds := make([]sq.Sqlizer, 0)

	if filter.Search != "" && len(r.desc.SearchColumns) > 0 {
		or := make(sq.Or, 0, len(r.desc.SearchColumns))
		for _, col := range r.desc.SearchColumns {
			or = append(or, sq.ILike{col: "%" + filter.Search + "%"})
		}
		conds = append(conds, or)
	}

	for field, value := range filter.Filter {
		col, ok := r.desc.FilterColumns[field]
		if !ok {
			continue
		}
		if s, isStr := value.(string); isStr && strings.Contains(s, ",") {
			conds = append(conds, sq.Eq{col: strings.Split(s, ",")})
		} else {
			conds = append(conds, sq.Eq{col: value})
		}
	}

	return conds
}

func (r *CrudRepository[T]) orderBy(filter types.Filter) string {
	if len(filter.Sort) > 0 {
		sorts := make([]string, 0, len(filter.Sort))
		for field, direction := range filter.Sort {
			col, ok := r.desc.SortColumns[field]
			if !ok {
				continue
			}
			dir := "ASC"
			if strings.ToLower(direction) == "desc" {
				dir = "DESC"
			}
			sorts = append(sorts, fmt.Sprintf("%s %s", col, dir))
		}
		if len(sorts) > 0 {
			return strings.Join(sorts, ", ")
		}
	}
	if r.desc.DefaultOrder != "" {
		return r.desc.DefaultOrder
	}
	return "id DESC"
}

func (r *CrudRepository[T]) List(ctx context.Context, filter types.Filter) ([]T, uint64, error) {
	conds := r.buildConditions(filter)

	countBuilder := psql.Select("COUNT(*)").From(r.desc.Table)
	for _, c := range conds {
		countBuilder = countBuilder.Where(c)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s sayım sorgusu kurulamadı: %w", r.desc.Table, err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s sayım sorgusu başarısız: %w", r.desc.Table, err)
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	builder := psql.Select(r.desc.SelectColumns...).From(r.desc.Table)
	for _, c := range conds {
		builder = builder.Where(c)
	}
	builder = builder.OrderBy(r.orderBy(filter))
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s liste sorgusu kurulamadı: %w", r.desc.Table, err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s liste sorgusu başarısız: %w", r.desc.Table, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *CrudRepository[T]) Find(ctx context.Context, id uint64) (*T, error) {
	query, args, err := psql.Select(r.desc.SelectColumns...).
		From(r.desc.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s bulma sorgusu kurulamadı: %w", r.desc.Table, err)
	}
	return r.scan(r.storage.QueryRow(ctx, query, args...))
}

func (r *CrudRepository[T]) Create(ctx context.Context, values map[string]interface{}) (*T, error) {
	query, args, err := psql.Insert(r.desc.Table).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s ekleme sorgusu kurulamadı: %w", r.desc.Table, err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return nil, fmt.Errorf("%s kaydı eklenemedi: %w", r.desc.Table, err)
	}

	return r.Find(ctx, newID)
}

func (r *CrudRepository[T]) Update(ctx context.Context, id uint64, values map[string]interface{}) (*T, error) {
	// Boş yama: hiçbir alan gönderilmemişse satıra dokunulmaz.
	if len(values) == 0 {
		return r.Find(ctx, id)
	}

	query, args, err := psql.Update(r.desc.Table).
		SetMap(values).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s güncelleme sorgusu kurulamadı: %w", r.desc.Table, err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s kaydı güncellenemedi: %w", r.desc.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	return r.Find(ctx, id)
}

func (r *CrudRepository[T]) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(r.desc.Table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s silme sorgusu kurulamadı: %w", r.desc.Table, err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s kaydı silinemedi: %w", r.desc.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
