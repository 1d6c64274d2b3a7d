package token

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "01234567890123456789012345678901"

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	userID := uuid.New()
	username := "royce"

	tokenStr, payload, err := maker.CreateToken(userID, username, false, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	require.NotNil(t, payload)

	got, err := maker.VertifyToken(tokenStr)
	require.NoError(t, err)
	require.Equal(t, userID, got.UserID)
	require.Equal(t, username, got.Username)
	require.False(t, got.IsAdmin)
	require.WithinDuration(t, payload.IssuedAt, got.IssuedAt, time.Second)
	require.WithinDuration(t, payload.ExpiredAt, got.ExpiredAt, time.Second)
}

func TestJWTMaker_ExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenStr, _, err := maker.CreateToken(uuid.New(), "royce", false, -time.Minute)
	require.NoError(t, err)

	got, err := maker.VertifyToken(tokenStr)
	require.ErrorIs(t, err, ErrExpiredToken)
	require.Nil(t, got)
}

func TestJWTMaker_InvalidToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	got, err := maker.VertifyToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Nil(t, got)
}

func TestJWTMaker_WrongKey(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenStr, _, err := maker.CreateToken(uuid.New(), "royce", true, time.Minute)
	require.NoError(t, err)

	otherMaker, err := NewJWTMaker(strings.Repeat("x", minSecretKeySize))
	require.NoError(t, err)

	got, err := otherMaker.VertifyToken(tokenStr)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Nil(t, got)
}

func TestNewJWTMaker_ShortKey(t *testing.T) {
	maker, err := NewJWTMaker("too-short")
	require.Error(t, err)
	require.Nil(t, maker)
}
