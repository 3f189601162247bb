package kvstore_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/kvstore"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// runStoreContract exercises the behaviour every KeyValueStore must share.
func runStoreContract(t *testing.T, store domain.KeyValueStore) {
	ctx := context.Background()

	t.Run("Missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Set then Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.HabitsKey, []byte(`[{"id":"a"}]`)))

		got, err := store.Get(ctx, domain.HabitsKey)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a"}]`, string(got))
	})

	t.Run("Set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.SettingsKey, []byte(`{"theme":"dark"}`)))
		require.NoError(t, store.Set(ctx, domain.SettingsKey, []byte(`{"theme":"light"}`)))

		got, err := store.Get(ctx, domain.SettingsKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"theme":"light"}`, string(got))
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.NotesKey, []byte(`{}`)))
		require.NoError(t, store.Delete(ctx, domain.NotesKey))
		require.NoError(t, store.Delete(ctx, domain.NotesKey))

		_, err := store.Get(ctx, domain.NotesKey)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Concurrent writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				key := fmt.Sprintf("concurrent_%d", id)
				assert.NoError(t, store.Set(ctx, key, []byte(`1`)))
			}(i)
		}
		wg.Wait()

		for i := 0; i < 10; i++ {
			_, err := store.Get(ctx, fmt.Sprintf("concurrent_%d", i))
			assert.NoError(t, err)
		}
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, kvstore.NewMemoryStore())

	t.Run("Returned bytes are a copy", func(t *testing.T) {
		s := kvstore.NewMemoryStore()
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "k", []byte("abc")))

		got, _ := s.Get(ctx, "k")
		got[0] = 'z'

		again, _ := s.Get(ctx, "k")
		assert.Equal(t, "abc", string(again))
	})
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanso.db")

	store, err := kvstore.OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	runStoreContract(t, store)

	t.Run("Data survives reopening", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "persist", []byte(`{"ok":true}`)))
		require.NoError(t, store.Close())

		reopened, err := kvstore.OpenSQLite(path)
		require.NoError(t, err)
		defer reopened.Close()

		got, err := reopened.Get(ctx, "persist")
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true}`, string(got))
	})
}

func TestRedisStore_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	rdb, err := cache.NewRedisClient(context.Background(), cache.Options{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       1,
	})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	require.NoError(t, rdb.FlushDB(context.Background()).Err())

	runStoreContract(t, kvstore.NewRedisStore(rdb, "kanso-test:"))
}

func TestPostgresStore_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "kanso_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "kanso_db"),
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	store, err := kvstore.NewPostgresStore(ctx, db, "kanso_kv_test")
	require.NoError(t, err)
	defer db.Exec(`DROP TABLE IF EXISTS "kanso_kv_test"`)

	runStoreContract(t, store)
}
