// Package session issues and validates the signed admin session token that
// backs the back-office login cookie. There is a single staff identity, so
// claims carry only the subject marker and expiry.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session expired")
)

const adminSubject = "admin"

type Claims struct {
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	duration  time.Duration
}

func NewService(secretKey string, duration time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		duration:  duration,
	}
}

func (s *Service) Duration() time.Duration {
	return s.duration
}

func (s *Service) Issue(now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) Validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject != adminSubject {
		return ErrInvalidToken
	}

	return nil
}
