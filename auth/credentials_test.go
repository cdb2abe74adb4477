package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ksalau/learnflow-backend/auth"
	"github.com/ksalau/learnflow-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	second, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, auth.CheckPassword("hunter2", first))
	assert.True(t, auth.CheckPassword("hunter2", second))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	assert.False(t, auth.CheckPassword("wrong", hash))
}

func TestCheckPassword_EmptyHashNeverMatches(t *testing.T) {
	// federated accounts have no local password
	assert.False(t, auth.CheckPassword("", ""))
	assert.False(t, auth.CheckPassword("anything", ""))
}

func testUser() *models.User {
	return models.NewUser(models.InsertUser{
		Username:     "sam",
		Email:        "sam@example.com",
		PasswordHash: "h",
		Role:         models.RoleAdmin,
	})
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	user := testUser()
	user.TokenVersion = 3

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "sam", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, 3, claims.TokenVersion)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	token, err := auth.NewTokenIssuer("secret", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = auth.NewTokenIssuer("other", time.Hour).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	token, err := auth.NewTokenIssuer("secret", time.Nanosecond).Issue(testUser())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = auth.NewTokenIssuer("secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_RejectsTampered(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJyb2xlIjoiYWRtaW4ifQ." + parts[2]

	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_RejectsNonHMACSigningMethod(t *testing.T) {
	// alg=none style tokens must not verify
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userId": "x"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.NewTokenIssuer("secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	_, err := auth.NewTokenIssuer("secret", time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestNewTokenIssuer_ZeroLifetimeUsesDefault(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", 0)
	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t,
		time.Now().Add(auth.DefaultSessionLifetime),
		claims.ExpiresAt.Time,
		time.Minute,
	)
}
