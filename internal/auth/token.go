// Package auth issues and checks the HS256 access/refresh token pair.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("Given token not valid for any token type")

type Claims struct {
	TokenType string `json:"token_type"`
	UserID    int64  `json:"user_id"`
	jwt.RegisteredClaims
}

type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (m *TokenManager) IssuePair(userID int64) (Pair, error) {
	access, err := m.issue(userID, TypeAccess, m.accessTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.issue(userID, TypeRefresh, m.refreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (m *TokenManager) Refresh(refresh string) (string, error) {
	c, err := m.parse(refresh, TypeRefresh)
	if err != nil {
		return "", err
	}
	return m.issue(c.UserID, TypeAccess, m.accessTTL)
}

func (m *TokenManager) ParseAccess(token string) (*Claims, error) {
	return m.parse(token, TypeAccess)
}

// Verify accepts a valid token of either type.
func (m *TokenManager) Verify(token string) error {
	_, err := m.parse(token, "")
	return err
}

func (m *TokenManager) issue(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		TokenType: tokenType,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (m *TokenManager) parse(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != TypeAccess && claims.TokenType != TypeRefresh {
		return nil, fmt.Errorf("%w: unknown token type %q", ErrInvalidToken, claims.TokenType)
	}
	if wantType != "" && claims.TokenType != wantType {
		return nil, fmt.Errorf("%w: want %s token", ErrInvalidToken, wantType)
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: no user", ErrInvalidToken)
	}
	return claims, nil
}
