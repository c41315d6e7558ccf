package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	"valilik-yonetim/pkg/constants"
	"valilik-yonetim/pkg/eventbus"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/types"
)

// --- Sahte repository'ler ---

type fakeRandevuRepo struct {
	randevular     map[uint64]*entities.Randevu
	conflict       bool
	conflictCalled bool
	appliedUpdates []map[string]interface{}
}

func newFakeRandevuRepo(randevular ...*entities.Randevu) *fakeRandevuRepo {
	repo := &fakeRandevuRepo{randevular: make(map[uint64]*entities.Randevu)}
	for _, r := range randevular {
		repo.randevular[r.ID] = r
	}
	return repo
}

func (f *fakeRandevuRepo) List(ctx context.Context, filter types.Filter) ([]entities.Randevu, uint64, error) {
	items := make([]entities.Randevu, 0, len(f.randevular))
	for _, r := range f.randevular {
		items = append(items, *r)
	}
	return items, uint64(len(items)), nil
}

func (f *fakeRandevuRepo) Find(ctx context.Context, id uint64) (*entities.Randevu, error) {
	r, ok := f.randevular[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	kopya := *r
	return &kopya, nil
}

func (f *fakeRandevuRepo) Create(ctx context.Context, values map[string]interface{}) (*entities.Randevu, error) {
	id := uint64(len(f.randevular) + 1)
	r := &entities.Randevu{ID: id}
	if s, ok := values["ad_soyad"].(string); ok {
		r.AdSoyad = s
	}
	if s, ok := values["durum"].(string); ok {
		r.Durum = s
	}
	f.randevular[id] = r
	kopya := *r
	return &kopya, nil
}

func (f *fakeRandevuRepo) Update(ctx context.Context, id uint64, values map[string]interface{}) (*entities.Randevu, error) {
	r, ok := f.randevular[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	for alan, deger := range values {
		s, _ := deger.(string)
		switch alan {
		case "durum":
			r.Durum = s
		case "havale_birimi":
			r.HavaleBirimi = s
		case "yonlendirilen_birim":
			r.YonlendirilenBirim = s
		case "tarih":
			r.Tarih = s
		case "saat":
			r.Saat = s
		case "notlar":
			r.Notlar = s
		case "sonuc_notlari":
			r.SonucNotlari = s
		}
	}
	f.appliedUpdates = append(f.appliedUpdates, values)
	kopya := *r
	return &kopya, nil
}

func (f *fakeRandevuRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := f.randevular[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.randevular, id)
	return nil
}

func (f *fakeRandevuRepo) HasSlotConflict(ctx context.Context, tarih, saat string, excludeID uint64) (bool, error) {
	f.conflictCalled = true
	return f.conflict, nil
}

func (f *fakeRandevuRepo) ListToday(ctx context.Context) ([]entities.Randevu, error) {
	return nil, nil
}

type fakeTalimatRepo struct {
	created    []map[string]interface{}
	deletedFor []uint64
	mevcut     int64 // DeleteByRandevuID'nin "sileceği" satır sayısı
}

func (f *fakeTalimatRepo) List(ctx context.Context, filter types.Filter) ([]entities.Talimat, uint64, error) {
	return nil, 0, nil
}

func (f *fakeTalimatRepo) Find(ctx context.Context, id uint64) (*entities.Talimat, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeTalimatRepo) Create(ctx context.Context, values map[string]interface{}) (*entities.Talimat, error) {
	f.created = append(f.created, values)
	return &entities.Talimat{ID: uint64(len(f.created))}, nil
}

func (f *fakeTalimatRepo) Update(ctx context.Context, id uint64, values map[string]interface{}) (*entities.Talimat, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeTalimatRepo) Delete(ctx context.Context, id uint64) error {
	return apperrors.ErrNotFound
}

func (f *fakeTalimatRepo) DeleteByRandevuID(ctx context.Context, randevuID uint64) (int64, error) {
	f.deletedFor = append(f.deletedFor, randevuID)
	silinen := f.mevcut
	f.mevcut = 0
	return silinen, nil
}

func (f *fakeTalimatRepo) ListByRandevuID(ctx context.Context, randevuID uint64) ([]entities.Talimat, error) {
	return nil, nil
}

func newTestService(randevuRepo *fakeRandevuRepo, talimatRepo *fakeTalimatRepo) (RandevuServiceInterface, *eventbus.Bus) {
	bus := eventbus.New(zap.NewNop())
	svc := NewRandevuService(randevuRepo, talimatRepo, bus, zap.NewNop())
	return svc, bus
}

// --- Testler ---

func TestUpdateRandevu_KayitYoksa404(t *testing.T) {
	svc, _ := newTestService(newFakeRandevuRepo(), &fakeTalimatRepo{})

	_, err := svc.Update(context.Background(), 99, map[string]interface{}{"durum": constants.DurumOnaylandi})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateRandevu_SlotCakismasiReddedilir(t *testing.T) {
	repo := newFakeRandevuRepo(&entities.Randevu{ID: 1, Durum: constants.DurumBekliyor})
	repo.conflict = true
	svc, _ := newTestService(repo, &fakeTalimatRepo{})

	_, err := svc.Update(context.Background(), 1, map[string]interface{}{
		"tarih": "2026-09-01",
		"saat":  "10:30",
	})

	require.ErrorIs(t, err, apperrors.ErrRandevuCakismasi)
	assert.Empty(t, repo.appliedUpdates, "çakışan güncelleme hiç uygulanmamalı")
}

func TestUpdateRandevu_CakismaKontroluSadeceTarihVeSaatBirlikteyken(t *testing.T) {
	repo := newFakeRandevuRepo(&entities.Randevu{ID: 1, Tarih: "2026-09-01", Saat: "10:30"})
	repo.conflict = true
	svc, _ := newTestService(repo, &fakeTalimatRepo{})

	// Yalnızca saat gönderildiğinde kontrol çalışmaz; güncelleme geçer.
	_, err := svc.Update(context.Background(), 1, map[string]interface{}{"saat": "11:00"})

	require.NoError(t, err)
	assert.False(t, repo.conflictCalled)
	assert.Len(t, repo.appliedUpdates, 1)
}

func TestUpdateRandevu_HavaleTalimatOlusturur(t *testing.T) {
	repo := newFakeRandevuRepo(&entities.Randevu{
		ID:      5,
		AdSoyad: "Zeynep Arslan",
		Amac:    "Hastane yatırımı brifingi",
		Durum:   constants.DurumBekliyor,
	})
	talimatRepo := &fakeTalimatRepo{}
	svc, _ := newTestService(repo, talimatRepo)

	_, err := svc.Update(context.Background(), 5, map[string]interface{}{
		"durum":         constants.DurumBirimeHavale,
		"havale_birimi": "İl Sağlık Müdürlüğü",
	})

	require.NoError(t, err)
	require.Len(t, talimatRepo.created, 1)

	talimat := talimatRepo.created[0]
	assert.Equal(t, "Randevu: Zeynep Arslan - Hastane yatırımı brifingi", talimat["konu"])
	assert.Equal(t, "İl Sağlık Müdürlüğü", talimat["kurum"])
	assert.Equal(t, constants.TalimatVeren, talimat["veren"])
	assert.Equal(t, constants.TalimatDurumBeklemede, talimat["durum"])
	assert.Equal(t, constants.TalimatOnemNormal, talimat["onem"])
	assert.Equal(t, uint64(5), talimat["randevu_id"])
	assert.Contains(t, talimat["icerik"], constants.TalimatSistemNotu)
}

func TestUpdateRandevu_HavaleHedefiYonlendirilenBirimeDuser(t *testing.T) {
	repo := newFakeRandevuRepo(&entities.Randevu{
		ID:                 2,
		AdSoyad:            "Ali Yılmaz",
		YonlendirilenBirim: "İl Milli Eğitim Müdürlüğü",
		Durum:              constants.DurumBekliyor,
	})
	talimatRepo := &fakeTalimatRepo{}
	svc, _ := newTestService(repo, talimatRepo)

	_, err := svc.Update(context.Background(), 2, map[string]interface{}{
		"durum": constants.DurumAltBirimeHavale,
	})

	require.NoError(t, err)
	require.Len(t, talimatRepo.created, 1)
	assert.Equal(t, "İl Milli Eğitim Müdürlüğü", talimatRepo.created[0]["kurum"])
}

func TestUpdateRandevu_HedefBirimBossaTalimatAcilmaz(t *testing.T) {
	repo := newFakeRandevuRepo(&entities.Randevu{ID: 3, AdSoyad: "Hasan Koç", Durum: constants.DurumBekliyor})
	talimatRepo := &fakeTalimatRepo{}
	svc, _ := newTestService(repo, talimatRepo)

	_, err := svc.Update(context.Background(), 3, map[string]interface{}{
		"durum": constants.DurumBirimeHavale,
	})

	require.NoError(t, err, "hedef birim boşken güncelleme yine de başarılıdır")
	assert.Empty(t, talimatRepo.created)
}

func TestUpdateRandevu_HavaledenCikistaTalimatlarSilinir(t *testing.T) {
	repo := newFakeRandevuRepo(&entities.Randevu{
		ID:           7,
		HavaleBirimi: "İl Sağlık Müdürlüğü",
		Durum:        constants.DurumBirimeHavale,
	})
	talimatRepo := &fakeTalimatRepo{mevcut: 1}
	svc, _ := newTestService(repo, talimatRepo)

	_, err := svc.Update(context.Background(), 7, map[string]interface{}{
		"durum": constants.DurumOnaylandi,
	})

	require.NoError(t, err)
	assert.Equal(t, []uint64{7}, talimatRepo.deletedFor)
	assert.Empty(t, talimatRepo.created)
}

func TestUpdateRandevu_HavaleDisiGecisSilmeIdempotent(t *testing.T) {
	// Bağlı talimat hiç yokken havale dışına geçiş hata üretmez.
	repo := newFakeRandevuRepo(&entities.Randevu{ID: 8, Durum: constants.DurumBekliyor})
	talimatRepo := &fakeTalimatRepo{mevcut: 0}
	svc, _ := newTestService(repo, talimatRepo)

	_, err := svc.Update(context.Background(), 8, map[string]interface{}{
		"durum": constants.DurumIptal,
	})

	require.NoError(t, err)
	assert.Equal(t, []uint64{8}, talimatRepo.deletedFor)
}

func TestUpdateRandevu_DurumYoksaTalimatlaraDokunulmaz(t *testing.T) {
	repo := newFakeRandevuRepo(&entities.Randevu{ID: 4, Durum: constants.DurumBirimeHavale})
	talimatRepo := &fakeTalimatRepo{mevcut: 1}
	svc, _ := newTestService(repo, talimatRepo)

	_, err := svc.Update(context.Background(), 4, map[string]interface{}{
		"notlar": "Görüşme öncesi hazırlık yapıldı",
	})

	require.NoError(t, err)
	assert.Empty(t, talimatRepo.created)
	assert.Empty(t, talimatRepo.deletedFor)
}

func TestUpdateRandevu_DurumDegisikligiOlayYayinlar(t *testing.T) {
	repo := newFakeRandevuRepo(&entities.Randevu{ID: 1, AdSoyad: "Ali Yılmaz", Durum: constants.DurumBekliyor})
	svc, bus := newTestService(repo, &fakeTalimatRepo{})

	alinan := make(chan RandevuDurumEvent, 1)
	bus.Subscribe(EventRandevuDurumDegisti, func(ctx context.Context, event eventbus.Event) error {
		if e, ok := event.(RandevuDurumEvent); ok {
			alinan <- e
		}
		return nil
	})

	_, err := svc.Update(context.Background(), 1, map[string]interface{}{
		"durum": constants.DurumOnaylandi,
	})
	require.NoError(t, err)

	select {
	case e := <-alinan:
		assert.Equal(t, uint64(1), e.RandevuID)
		assert.Equal(t, constants.DurumBekliyor, e.EskiDurum)
		assert.Equal(t, constants.DurumOnaylandi, e.YeniDurum)
	case <-time.After(time.Second):
		t.Fatal("durum değişikliği olayı yayınlanmadı")
	}
}

func TestCreateRandevu_VarsayilanDurumBekliyor(t *testing.T) {
	repo := newFakeRandevuRepo()
	svc, _ := newTestService(repo, &fakeTalimatRepo{})

	randevu, err := svc.Create(context.Background(), map[string]interface{}{
		"ad_soyad": "Ali Yılmaz",
	})

	require.NoError(t, err)
	assert.Equal(t, constants.DurumBekliyor, randevu.Durum)
}
