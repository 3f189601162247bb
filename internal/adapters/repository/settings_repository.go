package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

var _ domain.SettingsRepository = (*SettingsRepository)(nil)

type SettingsRepository struct {
	store domain.KeyValueStore
}

func NewSettingsRepository(store domain.KeyValueStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get decodes the stored object over the defaults, so fields missing from
// older blobs keep their default value.
func (r *SettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	s := domain.DefaultSettings()

	raw, err := r.store.Get(ctx, domain.SettingsKey)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("repository: load settings: %w", err)
	}

	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("repository: decode settings: %w", err)
	}
	return s.FillDefaults(), nil
}

func (r *SettingsRepository) Save(ctx context.Context, s domain.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("repository: encode settings: %w", err)
	}
	if err := r.store.Set(ctx, domain.SettingsKey, data); err != nil {
		return fmt.Errorf("repository: save settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) Reset(ctx context.Context) error {
	return r.store.Delete(ctx, domain.SettingsKey)
}
