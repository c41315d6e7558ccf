package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/pkg/constants"
)

type TalimatServiceInterface interface {
	CrudServiceInterface[entities.Talimat]
	ListByRandevuID(ctx context.Context, randevuID uint64) ([]entities.Talimat, error)
}

type TalimatService struct {
	*CrudService[entities.Talimat]
	repo repositories.TalimatRepositoryInterface
}

func NewTalimatService(repo repositories.TalimatRepositoryInterface, logger *zap.Logger) TalimatServiceInterface {
	return &TalimatService{
		CrudService: NewCrudService[entities.Talimat](repo, logger),
		repo:        repo,
	}
}

// Create, elle açılan talimatların boş bırakılan alanlarını varsayılanlarla doldurur.
func (s *TalimatService) Create(ctx context.Context, values map[string]interface{}) (*entities.Talimat, error) {
	if durum, ok := values["durum"].(string); !ok || durum == "" {
		values["durum"] = constants.TalimatDurumBeklemede
	}
	if onem, ok := values["onem"].(string); !ok || onem == "" {
		values["onem"] = constants.TalimatOnemNormal
	}
	if tarih, ok := values["tarih"].(string); !ok || tarih == "" {
		values["tarih"] = time.Now().Format(constants.TarihFormat)
	}
	return s.repo.Create(ctx, values)
}

func (s *TalimatService) ListByRandevuID(ctx context.Context, randevuID uint64) ([]entities.Talimat, error) {
	return s.repo.ListByRandevuID(ctx, randevuID)
}
