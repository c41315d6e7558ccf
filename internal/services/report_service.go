package services

import (
	"context"

	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/pkg/types"
)

// Excel çıktısı sayfalama tanımaz; filtreye uyan tüm satırlar dökülür.
const raporSatirLimiti = 100000

type ReportServiceInterface interface {
	GetRandevuReport(ctx context.Context, filter types.Filter) ([]entities.Randevu, uint64, error)
}

type ReportService struct {
	randevuRepo repositories.RandevuRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(randevuRepo repositories.RandevuRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{randevuRepo: randevuRepo, logger: logger}
}

func (s *ReportService) GetRandevuReport(ctx context.Context, filter types.Filter) ([]entities.Randevu, uint64, error) {
	filter.Limit = raporSatirLimiti
	filter.Offset = 0
	return s.randevuRepo.List(ctx, filter)
}
