package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"valilik-yonetim/internal/dto"
	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/repositories"
	"valilik-yonetim/pkg/config"
	apperrors "valilik-yonetim/pkg/errors"
	"valilik-yonetim/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context, userID uint64) error
	Profile(ctx context.Context, userID uint64) (*entities.User, error)
}

type AuthService struct {
	userRepo    repositories.UserRepositoryInterface
	sessionRepo repositories.SessionRepositoryInterface
	jwtService  service.JWTService
	authConfig  config.AuthConfig
	logger      *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	jwtService service.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		authConfig:  authConfig,
		logger:      logger,
	}
}

// Login, e-posta/şifre doğrular ve token çifti üretir. Art arda başarısız
// denemelerde hesap, yapılandırılan pencere boyunca kilitlenir; sayaç Redis'te
// tutulur ve pencere dolunca kendiliğinden sıfırlanır.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	attempts, err := s.sessionRepo.GetLoginAttempts(ctx, payload.Eposta)
	if err != nil {
		s.logger.Error("Giriş deneme sayacı okunamadı", zap.Error(err))
	}
	if attempts >= int64(s.authConfig.MaxLoginAttempts) {
		return nil, apperrors.ErrAccountLocked
	}

	user, err := s.userRepo.FindByEmail(ctx, payload.Eposta)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.registerFailedAttempt(ctx, payload.Eposta)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Aktif {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SifreHash), []byte(payload.Sifre)); err != nil {
		s.registerFailedAttempt(ctx, payload.Eposta)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.sessionRepo.ResetLoginAttempts(ctx, payload.Eposta); err != nil {
		s.logger.Error("Giriş deneme sayacı sıfırlanamadı", zap.Error(err))
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Rol)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.StoreRefreshToken(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	s.logger.Info("Kullanıcı giriş yaptı", zap.Uint64("user_id", user.ID), zap.String("eposta", user.Eposta))

	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserPublicDTO{
			ID:      user.ID,
			AdSoyad: user.AdSoyad,
			Eposta:  user.Eposta,
			Rol:     user.Rol,
		},
	}, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, eposta string) {
	count, err := s.sessionRepo.IncrementLoginAttempts(ctx, eposta, s.authConfig.LockoutDuration)
	if err != nil {
		s.logger.Error("Giriş deneme sayacı artırılamadı", zap.Error(err))
		return
	}
	if count >= int64(s.authConfig.MaxLoginAttempts) {
		s.logger.Warn("Hesap geçici olarak kilitlendi",
			zap.String("eposta", eposta),
			zap.Int64("deneme", count),
		)
	}
}

// RefreshTokens, geçerli bir refresh token karşılığında yeni token çifti verir.
// Token, Redis'te saklanan son token ile birebir eşleşmek zorundadır; eski
// çift böylece tek kullanımlık olur.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	stored, err := s.sessionRepo.GetRefreshToken(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if stored != refreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Rol)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.StoreRefreshToken(ctx, user.ID, newRefreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint64) error {
	return s.sessionRepo.DeleteRefreshToken(ctx, userID)
}

func (s *AuthService) Profile(ctx context.Context, userID uint64) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
