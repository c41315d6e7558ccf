package services

import (
	"context"

	"go.uber.org/zap"

	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/pkg/types"
)

// CrudServiceInterface, özel iş kuralı taşımayan modüllerin ortak servis
// sözleşmesidir. Randevu gibi kuralı olan modüller bunu gömüp üzerine yazar.
type CrudServiceInterface[T any] interface {
	List(ctx context.Context, filter types.Filter) ([]T, uint64, error)
	Find(ctx context.Context, id uint64) (*T, error)
	Create(ctx context.Context, values map[string]interface{}) (*T, error)
	Update(ctx context.Context, id uint64, values map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uint64) error
}

type CrudService[T any] struct {
	repo   repositories.CrudRepositoryInterface[T]
	logger *zap.Logger
}

func NewCrudService[T any](repo repositories.CrudRepositoryInterface[T], logger *zap.Logger) *CrudService[T] {
	return &CrudService[T]{repo: repo, logger: logger}
}

func (s *CrudService[T]) List(ctx context.Context, filter types.Filter) ([]T, uint64, error) {
	return s.repo.List(ctx, filter)
}

func (s *CrudService[T]) Find(ctx context.Context, id uint64) (*T, error) {
	return s.repo.Find(ctx, id)
}

func (s *CrudService[T]) Create(ctx context.Context, values map[string]interface{}) (*T, error) {
	return s.repo.Create(ctx, values)
}

func (s *CrudService[T]) Update(ctx context.Context, id uint64, values map[string]interface{}) (*T, error) {
	return s.repo.Update(ctx, id, values)
}

func (s *CrudService[T]) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
