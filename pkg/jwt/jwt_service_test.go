package jwt

import (
	"testing"
	"time"

	"RecipeShare-Backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(secret string) *jwtService {
	return &jwtService{secretKey: secret, issuer: "RECIPESHARE"}
}

func TestSessionTokenRoundtrip(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.NewString()

	token := svc.GenerateTokenUser(userID, "alice")
	require.NotEmpty(t, token)

	gotID, gotUsername, err := svc.GetUserByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "alice", gotUsername)
}

func TestSessionTokenRejectsWrongKey(t *testing.T) {
	token := testService("test-secret").GenerateTokenUser(uuid.NewString(), "alice")

	_, _, err := testService("other-secret").GetUserByToken(token)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	_, _, err := testService("test-secret").GetUserByToken("not.a.token")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResetTokenRoundtrip(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.NewString()

	token, err := svc.GenerateTokenResetPassword(map[string]any{
		"user_id": userID,
		"purpose": "reset_password",
	}, 15*time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateTokenResetPassword(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims["user_id"])
	assert.Equal(t, "reset_password", claims["purpose"])
	assert.Equal(t, "RECIPESHARE", claims["iss"])
}

func TestResetTokenExpires(t *testing.T) {
	svc := testService("test-secret")

	token, err := svc.GenerateTokenResetPassword(map[string]any{
		"user_id": uuid.NewString(),
	}, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateTokenResetPassword(token)
	require.ErrorIs(t, err, domain.ErrTokenExpired)
}
