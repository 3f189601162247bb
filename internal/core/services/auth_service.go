package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// AuthService guards the API behind the optional profile passcode.
type AuthService struct {
	repo   domain.SettingsRepository
	tokens *TokenService
	clock  domain.Clock
}

func NewAuthService(repo domain.SettingsRepository, tokens *TokenService, clock domain.Clock) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		clock:  clock,
	}
}

type ChangePasscodeInput struct {
	Current string
	New     string
}

// Locked reports whether requests need a token.
func (s *AuthService) Locked(ctx context.Context) (bool, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.HasPasscode(), nil
}

// ChangePasscode sets, replaces or (with an empty New) clears the passcode.
// Once a passcode exists the current one must be supplied.
func (s *AuthService) ChangePasscode(ctx context.Context, input ChangePasscodeInput) error {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}

	if settings.HasPasscode() {
		if err := settings.CheckPasscode(input.Current); err != nil {
			return err
		}
	}

	if input.New == "" {
		if !settings.HasPasscode() {
			return domain.ErrPasscodeNotSet
		}
		settings.ClearPasscode(s.clock.Now())
	} else if err := settings.SetPasscode(input.New, s.clock.Now()); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return fmt.Errorf("auth service: failed to save passcode: %w", err)
	}
	return nil
}

// Login exchanges the passcode for a signed token.
func (s *AuthService) Login(ctx context.Context, passcode string) (string, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	if err := settings.CheckPasscode(passcode); err != nil {
		return "", err
	}
	return s.tokens.GenerateToken(OwnerSubject, settings.PasscodeFingerprint())
}
