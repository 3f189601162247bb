package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const habitListCacheKey = "kanso:cache:habits"

// CachedHabitRepository keeps the decoded habit list in Redis so that stats
// requests skip the blob decode and normalisation pass.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client, ttl time.Duration) *CachedHabitRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedHabitRepository) invalidate(ctx context.Context) {
	if err := r.cache.Del(ctx, habitListCacheKey).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate habit list: %v", err)
	}
}

func (r *CachedHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	val, err := r.cache.Get(ctx, habitListCacheKey).Result()
	if err == nil {
		var habits []*domain.Habit
		if err := json.Unmarshal([]byte(val), &habits); err == nil {
			return habits, nil
		}

		log.Printf("[CACHE] Corrupted habit list, cleaning up key")
		r.cache.Del(ctx, habitListCacheKey)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	habits, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if setErr := r.cache.Set(ctx, habitListCacheKey, data, r.ttl).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Mutate(ctx context.Context, id string, fn func(h *domain.Habit) (bool, error)) (*domain.Habit, error) {
	changed := false
	habit, err := r.next.Mutate(ctx, id, func(h *domain.Habit) (bool, error) {
		ok, err := fn(h)
		changed = ok
		return ok, err
	})
	if err != nil {
		return nil, err
	}
	if changed {
		r.invalidate(ctx)
	}
	return habit, nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, id)
}

func (r *CachedHabitRepository) Upsert(ctx context.Context, habits []*domain.Habit) error {
	defer r.invalidate(ctx)
	return r.next.Upsert(ctx, habits)
}
