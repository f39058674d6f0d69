package jwt_test

import (
	"testing"

	"conectapro/config"
	"conectapro/infras/jwt"
	"conectapro/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWT(accessMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "conectapro"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessMin
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newJWT(15)

	pair, err := svc.GenerateTokenPair("user-1", "987654321", constant.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "987654321", claims.Phone)
	assert.Equal(t, constant.RoleProvider, claims.Role)
	assert.Equal(t, "conectapro", claims.Issuer)
	assert.NotEmpty(t, claims.TokenID)
}

func TestValidateRejectsWrongType(t *testing.T) {
	svc := newJWT(15)

	pair, err := svc.GenerateTokenPair("user-1", "987654321", constant.RoleClient)
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("not.a.token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateExpired(t *testing.T) {
	svc := newJWT(-1)

	pair, err := svc.GenerateTokenPair("user-1", "987654321", constant.RoleClient)
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := newJWT(15)

	pair, err := svc.GenerateTokenPair("user-1", "987654321", constant.RoleClient)
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, constant.RoleClient, claims.Role)

	_, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)

	_, err = jwt.ExtractTokenFromHeader("Token abc")
	assert.ErrorIs(t, err, jwt.ErrBearerFormat)
}

func TestValidateRejectsOtherIssuer(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "otra-app"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.AccessExpireMin = 15

	foreign, err := jwt.New(cfg).GenerateTokenPair("user-1", "987654321", constant.RoleClient)
	require.NoError(t, err)

	_, err = newJWT(15).ValidateToken(foreign.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
