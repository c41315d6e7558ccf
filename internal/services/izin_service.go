package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/pkg/constants"
	apperrors "valilik-yonetim/pkg/errors"
)

// Yıllık izin hakkı personel kartında tanımlı değilse bu değer kullanılır.
const varsayilanYillikIzinHakki = 20

type IzinServiceInterface interface {
	CrudServiceInterface[entities.Izin]
}

// IzinService, izin kaydı açılırken gün sayısını ve personelin aynı takvim
// yılındaki kalan izin bakiyesini hesaplar. İki alan da satıra yazılır.
type IzinService struct {
	*CrudService[entities.Izin]
	repo         repositories.IzinRepositoryInterface
	personelRepo repositories.CrudRepositoryInterface[entities.Personel]
	logger       *zap.Logger
}

func NewIzinService(
	repo repositories.IzinRepositoryInterface,
	personelRepo repositories.CrudRepositoryInterface[entities.Personel],
	logger *zap.Logger,
) IzinServiceInterface {
	return &IzinService{
		CrudService:  NewCrudService[entities.Izin](repo, logger),
		repo:         repo,
		personelRepo: personelRepo,
		logger:       logger,
	}
}

func (s *IzinService) Create(ctx context.Context, values map[string]interface{}) (*entities.Izin, error) {
	personelID, ok := values["personel_id"].(uint64)
	if !ok {
		return nil, apperrors.NewInvalidInputError("personel_id alanı zorunludur")
	}

	baslangicStr, _ := values["baslangic_tarihi"].(string)
	bitisStr, _ := values["bitis_tarihi"].(string)

	baslangic, err := time.Parse(constants.TarihFormat, baslangicStr)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("başlangıç tarihi geçersiz: %s", baslangicStr)
	}
	bitis, err := time.Parse(constants.TarihFormat, bitisStr)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("bitiş tarihi geçersiz: %s", bitisStr)
	}
	if bitis.Before(baslangic) {
		return nil, apperrors.NewInvalidInputError("bitiş tarihi başlangıç tarihinden önce olamaz")
	}

	// Her iki uç da dahildir: aynı gün başlayıp biten izin 1 gündür.
	gunSayisi := int(bitis.Sub(baslangic).Hours()/24) + 1

	personel, err := s.personelRepo.Find(ctx, personelID)
	if err != nil {
		return nil, err
	}

	yillikHak := personel.YillikIzinHakki
	if yillikHak == 0 {
		yillikHak = varsayilanYillikIzinHakki
	}

	kullanilan, err := s.repo.UsedDaysInYear(ctx, personelID, baslangic.Year())
	if err != nil {
		return nil, err
	}

	values["gun_sayisi"] = gunSayisi
	values["kalan_izin"] = yillikHak - kullanilan - gunSayisi

	return s.repo.Create(ctx, values)
}
