package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerSubject is the subject of every token: the tracker has a single profile.
const OwnerSubject = "owner"

// passcodeClaim binds a token to the passcode it was issued for.
const passcodeClaim = "pcf"

var ErrTokenRevoked = errors.New("token was issued for a previous passcode")

type TokenService struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
	settingsRepo  domain.SettingsRepository
}

func NewTokenService(secretKey string, issuer string, tokenDuration time.Duration, settingsRepo domain.SettingsRepository) *TokenService {
	return &TokenService{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
		settingsRepo:  settingsRepo,
	}
}

// GenerateToken signs a token for subject that stays valid only while the
// passcode with the given fingerprint is configured.
func (s *TokenService) GenerateToken(subject, passcodeFingerprint string) (string, error) {
	claims := jwt.MapClaims{
		"sub":         subject,
		"exp":         time.Now().Add(s.tokenDuration).Unix(),
		"iat":         time.Now().Unix(),
		"iss":         s.issuer,
		passcodeClaim: passcodeFingerprint,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken checks signature, issuer and expiry, and that the passcode
// the token was issued for is still the configured one.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if iss, ok := claims["iss"].(string); !ok || iss != s.issuer {
			return "", fmt.Errorf("invalid token issuer")
		}

		subject, ok := claims["sub"].(string)
		if !ok {
			return "", fmt.Errorf("invalid token subject")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return "", fmt.Errorf("settings unavailable: %w", err)
		}
		if !settings.HasPasscode() {
			return "", fmt.Errorf("passcode no longer configured: %w", domain.ErrPasscodeNotSet)
		}
		if fp, _ := claims[passcodeClaim].(string); fp != settings.PasscodeFingerprint() {
			return "", ErrTokenRevoked
		}

		return subject, nil
	}

	return "", fmt.Errorf("invalid token claims")
}
