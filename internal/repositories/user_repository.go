package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	apperrors "valilik-yonetim/pkg/errors"
)

const userColumns = `id, ad_soyad, eposta, sifre_hash, rol, aktif, created_at, updated_at`

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, eposta string) (*entities.User, error)
	Create(ctx context.Context, user entities.User) (uint64, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.AdSoyad, &u.Eposta, &u.SifreHash, &u.Rol, &u.Aktif, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kullanıcı satırı okunamadı: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, eposta string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE eposta = $1`, userColumns)
	return scanUser(r.storage.QueryRow(ctx, query, eposta))
}

func (r *UserRepository) Create(ctx context.Context, user entities.User) (uint64, error) {
	const query = `
		INSERT INTO users (ad_soyad, eposta, sifre_hash, rol, aktif)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var newID uint64
	err := r.storage.QueryRow(ctx, query, user.AdSoyad, user.Eposta, user.SifreHash, user.Rol, user.Aktif).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("kullanıcı kaydı eklenemedi: %w", err)
	}
	return newID, nil
}
