package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valilik-yonetim/pkg/constants"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/types"
)

// Veritabanı testleri TEST_DATABASE_URL ister; şemanın goose ile uygulanmış
// olması beklenir (go run ./cmd/migrate -command up).
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tanımlı değil, veritabanı testleri atlanıyor")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE TABLE talimatlar, randevular RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "tablolar temizlenemedi")

	return pool
}

func yeniRandevu(t *testing.T, repo RandevuRepositoryInterface, adSoyad, tarih, saat, durum string) uint64 {
	t.Helper()

	randevu, err := repo.Create(context.Background(), map[string]interface{}{
		"ad_soyad": adSoyad,
		"amac":     "Test görüşmesi",
		"tarih":    tarih,
		"saat":     saat,
		"durum":    durum,
	})
	require.NoError(t, err)
	return randevu.ID
}

func TestRandevuRepository_CreateVeFind(t *testing.T) {
	pool := testPool(t)
	repo := NewRandevuRepository(pool, zap.NewNop())

	id := yeniRandevu(t, repo, "Ali Yılmaz", "2026-09-01", "09:30", constants.DurumBekliyor)

	randevu, err := repo.Find(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ali Yılmaz", randevu.AdSoyad)
	assert.Equal(t, "2026-09-01", randevu.Tarih, "tarih gün hassasiyetinde serileştirilir")
	assert.Equal(t, "09:30", randevu.Saat)

	_, err = repo.Find(context.Background(), 99999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRandevuRepository_KismiGuncelleme(t *testing.T) {
	pool := testPool(t)
	repo := NewRandevuRepository(pool, zap.NewNop())

	id := yeniRandevu(t, repo, "Zeynep Arslan", "2026-09-01", "10:30", constants.DurumBekliyor)

	guncel, err := repo.Update(context.Background(), id, map[string]interface{}{
		"durum": constants.DurumOnaylandi,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DurumOnaylandi, guncel.Durum)
	// Yamada olmayan alanlar değişmez.
	assert.Equal(t, "Zeynep Arslan", guncel.AdSoyad)
	assert.Equal(t, "10:30", guncel.Saat)

	_, err = repo.Update(context.Background(), 99999, map[string]interface{}{"durum": constants.DurumIptal})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRandevuRepository_ListeFiltreVeSayfalama(t *testing.T) {
	pool := testPool(t)
	repo := NewRandevuRepository(pool, zap.NewNop())

	yeniRandevu(t, repo, "Ali Yılmaz", "2026-09-01", "09:00", constants.DurumBekliyor)
	yeniRandevu(t, repo, "Zeynep Arslan", "2026-09-01", "10:00", constants.DurumBekliyor)
	yeniRandevu(t, repo, "Hasan Koç", "2026-09-02", "09:00", constants.DurumOnaylandi)

	items, total, err := repo.List(context.Background(), types.Filter{
		Filter: map[string]interface{}{"durum": constants.DurumBekliyor},
		Limit:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, items, 1)

	items, total, err = repo.List(context.Background(), types.Filter{Search: "arslan", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Zeynep Arslan", items[0].AdSoyad)
}

func TestRandevuRepository_HasSlotConflict(t *testing.T) {
	pool := testPool(t)
	repo := NewRandevuRepository(pool, zap.NewNop())

	id := yeniRandevu(t, repo, "Ali Yılmaz", "2026-09-01", "09:30", constants.DurumBekliyor)

	cakisma, err := repo.HasSlotConflict(context.Background(), "2026-09-01", "09:30", 0)
	require.NoError(t, err)
	assert.True(t, cakisma)

	// Kayıt kendisiyle çakışmaz.
	cakisma, err = repo.HasSlotConflict(context.Background(), "2026-09-01", "09:30", id)
	require.NoError(t, err)
	assert.False(t, cakisma)

	cakisma, err = repo.HasSlotConflict(context.Background(), "2026-09-01", "11:00", 0)
	require.NoError(t, err)
	assert.False(t, cakisma)
}

func TestTalimatRepository_DeleteByRandevuID(t *testing.T) {
	pool := testPool(t)
	randevuRepo := NewRandevuRepository(pool, zap.NewNop())
	talimatRepo := NewTalimatRepository(pool, zap.NewNop())

	id := yeniRandevu(t, randevuRepo, "Ali Yılmaz", "2026-09-01", "09:30", constants.DurumBekliyor)

	_, err := talimatRepo.Create(context.Background(), map[string]interface{}{
		"konu":       "Randevu: Ali Yılmaz - Test görüşmesi",
		"veren":      constants.TalimatVeren,
		"kurum":      "İl Sağlık Müdürlüğü",
		"icerik":     constants.TalimatSistemNotu,
		"durum":      constants.TalimatDurumBeklemede,
		"onem":       constants.TalimatOnemNormal,
		"tarih":      "2026-09-01",
		"randevu_id": id,
	})
	require.NoError(t, err)

	silinen, err := talimatRepo.DeleteByRandevuID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), silinen)

	// Bağlı kayıt kalmamışken tekrar silmek hata değildir.
	silinen, err = talimatRepo.DeleteByRandevuID(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, silinen)
}
