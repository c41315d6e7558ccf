package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valilik-yonetim/pkg/constants"
	apperrors "valilik-yonetim/pkg/errors"
)

func newTestJWTService() JWTService {
	return NewJWTService("test-gizli-anahtar", 15*time.Minute, 24*time.Hour, zap.NewNop())
}

func TestGenerateTokens_GidisDonus(t *testing.T) {
	svc := newTestJWTService()

	accessToken, refreshToken, err := svc.GenerateTokens(7, constants.RolAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), accessClaims.UserID)
	assert.Equal(t, constants.RolAdmin, accessClaims.Rol)
	assert.False(t, accessClaims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), refreshClaims.UserID)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestValidateToken_BozukToken(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("bu-bir-token-degil")
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_FarkliAnahtarlaImzalanmisToken(t *testing.T) {
	baskaSvc := NewJWTService("baska-anahtar", 15*time.Minute, 24*time.Hour, zap.NewNop())
	accessToken, _, err := baskaSvc.GenerateTokens(1, constants.RolKullanici)
	require.NoError(t, err)

	svc := newTestJWTService()
	_, err = svc.ValidateToken(accessToken)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_SuresiDolmusToken(t *testing.T) {
	svc := NewJWTService("test-gizli-anahtar", -time.Minute, -time.Minute, zap.NewNop())
	accessToken, _, err := svc.GenerateTokens(1, constants.RolKullanici)
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	require.Error(t, err)
}
