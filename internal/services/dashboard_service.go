package services

import (
	"context"

	"go.uber.org/zap"

	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/repositories"
)

// Gösterge panelinde sayılan tablolar. Anahtar, yanıt gövdesindeki modül adıdır.
var dashboardTables = map[string]string{
	"randevular":          "randevular",
	"talimatlar":          "talimatlar",
	"araclar":             "araclar",
	"evraklar":            "evraklar",
	"personeller":         "personeller",
	"izinler":             "izinler",
	"rezervasyonlar":      "salon_rezervasyonlari",
	"davetiyeler":         "davetiyeler",
	"ziyaretciler":        "ziyaretciler",
	"sehit_gazi_aileleri": "sehit_gazi_aileleri",
	"envanter":            "envanter",
	"gunluk_program":      "gunluk_program",
}

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	repo   repositories.DashboardRepositoryInterface
	logger *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{repo: repo, logger: logger}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	sayilar := make(map[string]uint64, len(dashboardTables))
	for modul, tablo := range dashboardTables {
		total, err := s.repo.CountTable(ctx, tablo)
		if err != nil {
			return nil, err
		}
		sayilar[modul] = total
	}

	dagilim, err := s.repo.RandevuDurumDagilimi(ctx)
	if err != nil {
		return nil, err
	}

	bugunkuRandevu, err := s.repo.BugunkuRandevuSayisi(ctx)
	if err != nil {
		return nil, err
	}

	bugunkuZiyaretci, err := s.repo.BugunkuZiyaretciSayisi(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		ModulSayilari:          sayilar,
		RandevuDurumDagilimi:   dagilim,
		BugunkuRandevuSayisi:   bugunkuRandevu,
		BugunkuZiyaretciSayisi: bugunkuZiyaretci,
	}, nil
}
