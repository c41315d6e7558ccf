package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/types"
)

type fakeIzinRepo struct {
	kullanilanGunler map[uint64]int
	created          []map[string]interface{}
}

func (f *fakeIzinRepo) List(ctx context.Context, filter types.Filter) ([]entities.Izin, uint64, error) {
	return nil, 0, nil
}

func (f *fakeIzinRepo) Find(ctx context.Context, id uint64) (*entities.Izin, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeIzinRepo) Create(ctx context.Context, values map[string]interface{}) (*entities.Izin, error) {
	f.created = append(f.created, values)
	return &entities.Izin{
		ID:        uint64(len(f.created)),
		GunSayisi: values["gun_sayisi"].(int),
		KalanIzin: values["kalan_izin"].(int),
	}, nil
}

func (f *fakeIzinRepo) Update(ctx context.Context, id uint64, values map[string]interface{}) (*entities.Izin, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeIzinRepo) Delete(ctx context.Context, id uint64) error {
	return apperrors.ErrNotFound
}

func (f *fakeIzinRepo) UsedDaysInYear(ctx context.Context, personelID uint64, year int) (int, error) {
	return f.kullanilanGunler[personelID], nil
}

type fakePersonelRepo struct {
	personeller map[uint64]*entities.Personel
}

func (f *fakePersonelRepo) List(ctx context.Context, filter types.Filter) ([]entities.Personel, uint64, error) {
	return nil, 0, nil
}

func (f *fakePersonelRepo) Find(ctx context.Context, id uint64) (*entities.Personel, error) {
	p, ok := f.personeller[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	kopya := *p
	return &kopya, nil
}

func (f *fakePersonelRepo) Create(ctx context.Context, values map[string]interface{}) (*entities.Personel, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakePersonelRepo) Update(ctx context.Context, id uint64, values map[string]interface{}) (*entities.Personel, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakePersonelRepo) Delete(ctx context.Context, id uint64) error {
	return apperrors.ErrNotFound
}

func newTestIzinService(izinRepo *fakeIzinRepo, personelRepo *fakePersonelRepo) IzinServiceInterface {
	return NewIzinService(izinRepo, personelRepo, zap.NewNop())
}

func TestCreateIzin_GunSayisiIkiUcuDaKapsar(t *testing.T) {
	izinRepo := &fakeIzinRepo{}
	personelRepo := &fakePersonelRepo{personeller: map[uint64]*entities.Personel{
		1: {ID: 1, YillikIzinHakki: 20},
	}}
	svc := newTestIzinService(izinRepo, personelRepo)

	izin, err := svc.Create(context.Background(), map[string]interface{}{
		"personel_id":      uint64(1),
		"baslangic_tarihi": "2026-09-01",
		"bitis_tarihi":     "2026-09-05",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, izin.GunSayisi)
	assert.Equal(t, 15, izin.KalanIzin)
}

func TestCreateIzin_AyniGunBaslayipBitenIzinBirGundur(t *testing.T) {
	izinRepo := &fakeIzinRepo{}
	personelRepo := &fakePersonelRepo{personeller: map[uint64]*entities.Personel{
		1: {ID: 1, YillikIzinHakki: 20},
	}}
	svc := newTestIzinService(izinRepo, personelRepo)

	izin, err := svc.Create(context.Background(), map[string]interface{}{
		"personel_id":      uint64(1),
		"baslangic_tarihi": "2026-09-01",
		"bitis_tarihi":     "2026-09-01",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, izin.GunSayisi)
}

func TestCreateIzin_BitisBaslangictanOnceOlamaz(t *testing.T) {
	svc := newTestIzinService(&fakeIzinRepo{}, &fakePersonelRepo{personeller: map[uint64]*entities.Personel{
		1: {ID: 1},
	}})

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"personel_id":      uint64(1),
		"baslangic_tarihi": "2026-09-05",
		"bitis_tarihi":     "2026-09-01",
	})

	var girisHatasi *apperrors.InvalidInputError
	require.ErrorAs(t, err, &girisHatasi)
}

func TestCreateIzin_KalanIzinKullanilanGunleriDuser(t *testing.T) {
	izinRepo := &fakeIzinRepo{kullanilanGunler: map[uint64]int{1: 7}}
	personelRepo := &fakePersonelRepo{personeller: map[uint64]*entities.Personel{
		1: {ID: 1, YillikIzinHakki: 30},
	}}
	svc := newTestIzinService(izinRepo, personelRepo)

	izin, err := svc.Create(context.Background(), map[string]interface{}{
		"personel_id":      uint64(1),
		"baslangic_tarihi": "2026-03-02",
		"bitis_tarihi":     "2026-03-04",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, izin.GunSayisi)
	assert.Equal(t, 30-7-3, izin.KalanIzin)
}

func TestCreateIzin_HakTanimsizsaVarsayilanKullanilir(t *testing.T) {
	izinRepo := &fakeIzinRepo{}
	personelRepo := &fakePersonelRepo{personeller: map[uint64]*entities.Personel{
		2: {ID: 2, YillikIzinHakki: 0},
	}}
	svc := newTestIzinService(izinRepo, personelRepo)

	izin, err := svc.Create(context.Background(), map[string]interface{}{
		"personel_id":      uint64(2),
		"baslangic_tarihi": "2026-06-01",
		"bitis_tarihi":     "2026-06-02",
	})

	require.NoError(t, err)
	assert.Equal(t, varsayilanYillikIzinHakki-2, izin.KalanIzin)
}

func TestCreateIzin_PersonelIDZorunludur(t *testing.T) {
	svc := newTestIzinService(&fakeIzinRepo{}, &fakePersonelRepo{})

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"baslangic_tarihi": "2026-09-01",
		"bitis_tarihi":     "2026-09-02",
	})

	var girisHatasi *apperrors.InvalidInputError
	require.ErrorAs(t, err, &girisHatasi)
}

func TestCreateIzin_PersonelYoksaBulunamadiDoner(t *testing.T) {
	svc := newTestIzinService(&fakeIzinRepo{}, &fakePersonelRepo{personeller: map[uint64]*entities.Personel{}})

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"personel_id":      uint64(42),
		"baslangic_tarihi": "2026-09-01",
		"bitis_tarihi":     "2026-09-02",
	})

	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
