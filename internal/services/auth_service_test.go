package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/entities"
	"valilik-yonetim/pkg/config"
	"valilik-yonetim/pkg/constants"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/service"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			kopya := *u
			return &kopya, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, eposta string) (*entities.User, error) {
	u, ok := f.users[eposta]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	kopya := *u
	return &kopya, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user entities.User) (uint64, error) {
	return 0, apperrors.ErrBadRequest
}

type fakeSessionRepo struct {
	refreshTokens map[uint64]string
	attempts      map[string]int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		refreshTokens: make(map[uint64]string),
		attempts:      make(map[string]int64),
	}
}

func (f *fakeSessionRepo) StoreRefreshToken(ctx context.Context, userID uint64, token string, ttl time.Duration) error {
	f.refreshTokens[userID] = token
	return nil
}

func (f *fakeSessionRepo) GetRefreshToken(ctx context.Context, userID uint64) (string, error) {
	token, ok := f.refreshTokens[userID]
	if !ok {
		return "", apperrors.ErrTokenNotFound
	}
	return token, nil
}

func (f *fakeSessionRepo) DeleteRefreshToken(ctx context.Context, userID uint64) error {
	delete(f.refreshTokens, userID)
	return nil
}

func (f *fakeSessionRepo) IncrementLoginAttempts(ctx context.Context, eposta string, lockoutWindow time.Duration) (int64, error) {
	f.attempts[eposta]++
	return f.attempts[eposta], nil
}

func (f *fakeSessionRepo) GetLoginAttempts(ctx context.Context, eposta string) (int64, error) {
	return f.attempts[eposta], nil
}

func (f *fakeSessionRepo) ResetLoginAttempts(ctx context.Context, eposta string) error {
	delete(f.attempts, eposta)
	return nil
}

const testSifre = "cok-gizli-sifre"

func newTestAuthService(t *testing.T) (AuthServiceInterface, *fakeSessionRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testSifre), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := &fakeUserRepo{users: map[string]*entities.User{
		"vali@example.gov.tr": {
			ID:        1,
			AdSoyad:   "Sistem Yöneticisi",
			Eposta:    "vali@example.gov.tr",
			SifreHash: string(hash),
			Rol:       constants.RolAdmin,
			Aktif:     true,
		},
		"pasif@example.gov.tr": {
			ID:        2,
			Eposta:    "pasif@example.gov.tr",
			SifreHash: string(hash),
			Rol:       constants.RolKullanici,
			Aktif:     false,
		},
	}}

	sessionRepo := newFakeSessionRepo()
	jwtService := service.NewJWTService("test-anahtar", 15*time.Minute, 24*time.Hour, zap.NewNop())
	authConfig := config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: 15 * time.Minute}

	return NewAuthService(userRepo, sessionRepo, jwtService, authConfig, zap.NewNop()), sessionRepo
}

func TestLogin_Basarili(t *testing.T) {
	svc, sessionRepo := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		Eposta: "vali@example.gov.tr",
		Sifre:  testSifre,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, uint64(1), resp.User.ID)
	assert.Equal(t, constants.RolAdmin, resp.User.Rol)
	assert.Equal(t, resp.RefreshToken, sessionRepo.refreshTokens[1])
}

func TestLogin_YanlisSifre(t *testing.T) {
	svc, sessionRepo := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Eposta: "vali@example.gov.tr",
		Sifre:  "yanlis-sifre",
	})

	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, int64(1), sessionRepo.attempts["vali@example.gov.tr"])
}

func TestLogin_BilinmeyenEpostaAyniHatayiVerir(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Eposta: "yok@example.gov.tr",
		Sifre:  testSifre,
	})

	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_PasifHesapGiremez(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Eposta: "pasif@example.gov.tr",
		Sifre:  testSifre,
	})

	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DenemeSinirindaHesapKilitlenir(t *testing.T) {
	svc, _ := newTestAuthService(t)
	payload := dto.LoginDTO{Eposta: "vali@example.gov.tr", Sifre: "yanlis-sifre"}

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), payload)
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Sınır dolunca doğru şifre bile kabul edilmez.
	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Eposta: "vali@example.gov.tr",
		Sifre:  testSifre,
	})
	require.ErrorIs(t, err, apperrors.ErrAccountLocked)
}

func TestLogin_BasariliGirisSayaciSifirlar(t *testing.T) {
	svc, sessionRepo := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Eposta: "vali@example.gov.tr", Sifre: "yanlis-sifre"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Eposta: "vali@example.gov.tr", Sifre: testSifre})
	require.NoError(t, err)
	assert.Zero(t, sessionRepo.attempts["vali@example.gov.tr"])
}

func TestRefreshTokens_EskiCiftTekKullanimliktir(t *testing.T) {
	svc, _ := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{Eposta: "vali@example.gov.tr", Sifre: testSifre})
	require.NoError(t, err)

	// Token zaman damgaları saniye hassasiyetindedir; aynı saniyede üretilen
	// yeni çift eskisiyle birebir aynı olurdu.
	time.Sleep(1100 * time.Millisecond)

	yeniCift, err := svc.RefreshTokens(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, yeniCift.AccessToken)

	// Eski refresh token artık saklanan token ile eşleşmez.
	_, err = svc.RefreshTokens(context.Background(), resp.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshTokens_AccessTokenKabulEdilmez(t *testing.T) {
	svc, _ := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{Eposta: "vali@example.gov.tr", Sifre: testSifre})
	require.NoError(t, err)

	_, err = svc.RefreshTokens(context.Background(), resp.AccessToken)
	require.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestLogout_RefreshTokenSilinir(t *testing.T) {
	svc, sessionRepo := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{Eposta: "vali@example.gov.tr", Sifre: testSifre})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.User.ID))
	assert.NotContains(t, sessionRepo.refreshTokens, resp.User.ID)
}
