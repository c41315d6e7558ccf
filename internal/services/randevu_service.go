package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/pkg/constants"
	"valilik-yonetim/pkg/eventbus"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/types"
)

type RandevuServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Randevu, uint64, error)
	Find(ctx context.Context, id uint64) (*entities.Randevu, error)
	Create(ctx context.Context, values map[string]interface{}) (*entities.Randevu, error)
	Update(ctx context.Context, id uint64, values map[string]interface{}) (*entities.Randevu, error)
	Delete(ctx context.Context, id uint64) error
	ListToday(ctx context.Context) ([]entities.Randevu, error)
}

// RandevuService, randevu modülünün iş kurallarını taşır: slot çakışma
// kontrolü, havale durumlarında talimat eşitlemesi ve durum değişikliği
// bildirimi. Diğer modüllerin aksine düz CRUD servisini kullanmaz.
type RandevuService struct {
	repo        repositories.RandevuRepositoryInterface
	talimatRepo repositories.TalimatRepositoryInterface
	bus         *eventbus.Bus
	logger      *zap.Logger
}

func NewRandevuService(
	repo repositories.RandevuRepositoryInterface,
	talimatRepo repositories.TalimatRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) RandevuServiceInterface {
	return &RandevuService{
		repo:        repo,
		talimatRepo: talimatRepo,
		bus:         bus,
		logger:      logger,
	}
}

func (s *RandevuService) List(ctx context.Context, filter types.Filter) ([]entities.Randevu, uint64, error) {
	return s.repo.List(ctx, filter)
}

func (s *RandevuService) Find(ctx context.Context, id uint64) (*entities.Randevu, error) {
	return s.repo.Find(ctx, id)
}

func (s *RandevuService) Create(ctx context.Context, values map[string]interface{}) (*entities.Randevu, error) {
	if durum, ok := values["durum"].(string); !ok || durum == "" {
		values["durum"] = constants.DurumBekliyor
	}
	return s.repo.Create(ctx, values)
}

// Update, randevu güncellemesinin tamamını yürütür:
//
//  1. Kayıt bulunur, yoksa ErrNotFound.
//  2. Yamada tarih VE saat birlikte geldiyse aynı slottaki başka bir randevu
//     aranır; varsa güncelleme hiç uygulanmadan ErrRandevuCakismasi döner.
//  3. Yalnızca gönderilen alanlar yazılır (boş string de bilinçli bir değerdir).
//  4. Yamada durum varsa talimat eşitlemesi çalışır: havale durumuna girişte
//     talimat açılır, havale dışına çıkışta randevuya bağlı talimatlar silinir.
//  5. Yamada durum varsa durum değişikliği olayı yayınlanır; dinleyici hataları
//     isteği asla düşürmez.
func (s *RandevuService) Update(ctx context.Context, id uint64, values map[string]interface{}) (*entities.Randevu, error) {
	mevcut, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	yeniTarih, tarihVar := values["tarih"].(string)
	yeniSaat, saatVar := values["saat"].(string)
	if tarihVar && saatVar {
		cakisma, err := s.repo.HasSlotConflict(ctx, yeniTarih, yeniSaat, id)
		if err != nil {
			return nil, err
		}
		if cakisma {
			return nil, apperrors.ErrRandevuCakismasi
		}
	}

	yeniDurum, durumVar := values["durum"].(string)

	guncel, err := s.repo.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}

	if durumVar {
		if err := s.syncTalimat(ctx, guncel, yeniDurum); err != nil {
			return nil, err
		}

		s.bus.Publish(ctx, RandevuDurumEvent{
			RandevuID: guncel.ID,
			AdSoyad:   guncel.AdSoyad,
			EskiDurum: mevcut.Durum,
			YeniDurum: yeniDurum,
			Tarih:     guncel.Tarih,
			Saat:      guncel.Saat,
		})
	}

	return guncel, nil
}

// syncTalimat, randevunun güncel durumuna göre bağlı talimat kayıtlarını
// eşitler. Havale durumuna girişte tek bir talimat açılır; havale dışı her
// durumda randevuya bağlı tüm talimatlar silinir (hiç olmaması hata değildir).
// Hedef birim alanı sonradan düzenlenirse mevcut talimat güncellenmez.
func (s *RandevuService) syncTalimat(ctx context.Context, randevu *entities.Randevu, yeniDurum string) error {
	if !constants.IsHavaleDurumu(yeniDurum) {
		silinen, err := s.talimatRepo.DeleteByRandevuID(ctx, randevu.ID)
		if err != nil {
			return err
		}
		if silinen > 0 {
			s.logger.Info("Randevuya bağlı talimatlar silindi",
				zap.Uint64("randevu_id", randevu.ID),
				zap.Int64("silinen", silinen),
			)
		}
		return nil
	}

	hedefBirim := randevu.HavaleBirimi
	if hedefBirim == "" {
		hedefBirim = randevu.YonlendirilenBirim
	}
	if hedefBirim == "" {
		s.logger.Warn("Havale durumu için hedef birim boş, talimat oluşturulmadı",
			zap.Uint64("randevu_id", randevu.ID),
			zap.String("durum", yeniDurum),
		)
		return nil
	}

	icerik := randevu.Notlar
	if icerik != "" {
		icerik += "\n\n"
	}
	icerik += constants.TalimatSistemNotu

	_, err := s.talimatRepo.Create(ctx, map[string]interface{}{
		"konu":       talimatKonusu(randevu),
		"veren":      constants.TalimatVeren,
		"kurum":      hedefBirim,
		"icerik":     icerik,
		"durum":      constants.TalimatDurumBeklemede,
		"onem":       constants.TalimatOnemNormal,
		"tarih":      time.Now().Format(constants.TarihFormat),
		"randevu_id": randevu.ID,
	})
	if err != nil {
		return err
	}

	s.logger.Info("Havale edilen randevu için talimat oluşturuldu",
		zap.Uint64("randevu_id", randevu.ID),
		zap.String("hedef_birim", hedefBirim),
	)
	return nil
}

func talimatKonusu(randevu *entities.Randevu) string {
	switch {
	case randevu.AdSoyad != "" && randevu.Amac != "":
		return fmt.Sprintf("Randevu: %s - %s", randevu.AdSoyad, randevu.Amac)
	case randevu.AdSoyad != "":
		return fmt.Sprintf("Randevu: %s", randevu.AdSoyad)
	case randevu.Amac != "":
		return fmt.Sprintf("Randevu: %s", randevu.Amac)
	default:
		return fmt.Sprintf("Randevu: %s", constants.TalimatVarsayilanKonu)
	}
}

func (s *RandevuService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}

func (s *RandevuService) ListToday(ctx context.Context) ([]entities.Randevu, error) {
	return s.repo.ListToday(ctx)
}
