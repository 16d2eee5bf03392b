package auth

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword(hash, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("not-a-real-hash", "password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func testTokenService(t *testing.T, duration time.Duration) *TokenService {
	t.Helper()

	keyHex := strings.Repeat("ab", 32)
	svc, err := NewTokenService(keyHex, duration)
	require.NoError(t, err)
	return svc
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := testTokenService(t, time.Hour)

	user := &domain.User{Username: "alice"}
	user.ID = "user-abc"

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user-abc", claims.Subject)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := testTokenService(t, -time.Minute)

	user := &domain.User{Username: "alice"}
	user.ID = "user-abc"

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	require.Error(t, err)
}

func TestTokenService_WrongKey(t *testing.T) {
	svc := testTokenService(t, time.Hour)

	user := &domain.User{Username: "alice"}
	user.ID = "user-abc"
	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	other, err := NewTokenService(strings.Repeat("cd", 32), time.Hour)
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	require.Error(t, err)
}

func TestTokenService_GarbageToken(t *testing.T) {
	svc := testTokenService(t, time.Hour)

	_, err := svc.VerifyAccessToken("v4.local.garbage")
	require.Error(t, err)
}

func TestNewTokenService_BadKey(t *testing.T) {
	_, err := NewTokenService("too-short", time.Hour)
	require.Error(t, err)

	_, err = NewTokenService(strings.Repeat("zz", 32), time.Hour)
	require.Error(t, err)
}

func TestLoadOrGenerateKey(t *testing.T) {
	dir := t.TempDir()

	key, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	require.Len(t, key, 32)

	// Second load returns the same key
	again, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(key), hex.EncodeToString(again))
}
