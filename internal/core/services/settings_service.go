package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

type SettingsService struct {
	repo  domain.SettingsRepository
	clock domain.Clock
}

func NewSettingsService(repo domain.SettingsRepository, clock domain.Clock) *SettingsService {
	return &SettingsService{
		repo:  repo,
		clock: clock,
	}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	updated, err := current.Merge(patch, s.clock.Now())
	if err != nil {
		return current, err
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return current, fmt.Errorf("settings service: failed to save: %w", err)
	}
	return updated, nil
}

// Reset restores the defaults. A configured passcode survives the reset so
// that it cannot be used to unlock the API.
func (s *SettingsService) Reset(ctx context.Context) (domain.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	if !current.HasPasscode() {
		if err := s.repo.Reset(ctx); err != nil {
			return current, err
		}
		return s.repo.Get(ctx)
	}

	def := domain.DefaultSettings()
	def.PasscodeHash = current.PasscodeHash
	def.UpdatedAt = s.clock.Now().UTC()
	if err := s.repo.Save(ctx, def); err != nil {
		return current, err
	}
	return def, nil
}

func (s *SettingsService) CompleteOnboarding(ctx context.Context, username string) (domain.Settings, error) {
	done := true
	patch := domain.SettingsPatch{OnboardingComplete: &done}
	if username != "" {
		patch.Username = &username
	}
	return s.Update(ctx, patch)
}
