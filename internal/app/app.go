// Package app assembles the storage backend, repositories, services and the
// reminder worker from a Config. Both binaries start from here.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/kvstore"
	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/notifier"
	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-tracker/internal/config"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/services"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/workers"
)

type App struct {
	Config config.Config
	Clock  domain.Clock
	Store  domain.KeyValueStore
	Redis  *redis.Client

	Habits   domain.HabitRepository
	Notes    domain.NoteRepository
	Settings domain.SettingsRepository

	HabitService    *services.HabitService
	NoteService     *services.NoteService
	SettingsService *services.SettingsService
	StatsService    *services.StatsService
	ExportService   *services.ExportService
	TokenService    *services.TokenService
	AuthService     *services.AuthService

	Reminders *workers.ReminderWorker

	closers []io.Closer
}

type Option func(*options)

type options struct {
	clock     domain.Clock
	store     domain.KeyValueStore
	reminders bool
}

// WithClock pins "now", mostly for tests.
func WithClock(c domain.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithStore bypasses the configured driver.
func WithStore(s domain.KeyValueStore) Option {
	return func(o *options) { o.store = s }
}

// WithoutReminders skips the notifier and the worker (CLI use).
func WithoutReminders() Option {
	return func(o *options) { o.reminders = false }
}

func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	o := options{reminders: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = domain.SystemClock{Location: cfg.Location()}
	}

	a := &App{Config: cfg, Clock: o.clock}

	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			if cfg.StoreDriver == config.DriverRedis {
				return nil, err
			}
			log.Printf("[CACHE] Redis unavailable, running without cache and rate limiting: %v", err)
		} else {
			a.Redis = rdb
			a.closers = append(a.closers, rdb)
		}
	}

	store := o.store
	if store == nil {
		var err error
		if store, err = a.openStore(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}
	a.Store = store

	habitRepo := domain.HabitRepository(repository.NewHabitRepository(store, o.clock))
	if a.Redis != nil {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, a.Redis, cfg.CacheTTL)
	}
	a.Habits = habitRepo
	a.Notes = repository.NewNoteRepository(store)
	a.Settings = repository.NewSettingsRepository(store)

	var scheduler services.ReminderScheduler
	if o.reminders {
		n, err := a.openNotifier()
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Reminders = workers.NewReminderWorker(n, a.Settings, o.clock, cfg.ReminderInterval)
		scheduler = a.Reminders
	}

	a.HabitService = services.NewHabitService(a.Habits, a.Notes, scheduler, o.clock)
	a.NoteService = services.NewNoteService(a.Notes, a.Habits, o.clock)
	a.SettingsService = services.NewSettingsService(a.Settings, o.clock)
	a.StatsService = services.NewStatsService(a.Habits, a.Notes, a.Settings, o.clock)
	a.ExportService = services.NewExportService(a.Habits, scheduler, o.clock)
	a.TokenService = services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, a.Settings)
	a.AuthService = services.NewAuthService(a.Settings, a.TokenService, o.clock)

	return a, nil
}

func (a *App) openStore(ctx context.Context) (domain.KeyValueStore, error) {
	cfg := a.Config

	switch cfg.StoreDriver {
	case config.DriverSQLite:
		s, err := kvstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s)
		log.Printf("[STORE] Using SQLite at %s", cfg.SQLitePath)
		return s, nil

	case config.DriverPostgres:
		log.Println("[STORE] Connecting to database...")
		db, err := sqlx.Connect(cfg.DBDriver, cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		a.closers = append(a.closers, db)

		s, err := kvstore.NewPostgresStore(ctx, db, cfg.DBTable)
		if err != nil {
			return nil, err
		}
		log.Println("[STORE] Database connected successfully.")
		return s, nil

	case config.DriverRedis:
		log.Println("[STORE] Using Redis as primary store")
		return kvstore.NewRedisStore(a.Redis, "kanso:"), nil

	default:
		log.Println("[STORE] Using in-memory store, data is lost on exit")
		return kvstore.NewMemoryStore(), nil
	}
}

func (a *App) openNotifier() (workers.Notifier, error) {
	if a.Config.AMQPURL == "" {
		return notifier.NewLogNotifier(), nil
	}

	pub, err := notifier.NewRabbitMQPublisher(a.Config.AMQPURL)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, pub)
	return notifier.NewAMQPNotifier(pub, notifier.DefaultBreakerSettings()), nil
}

// Router builds the HTTP API on top of the wired services.
func (a *App) Router(startTime time.Time) *gin.Engine {
	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(a.AuthService),
		HabitHandler:    adapterHTTP.NewHabitHandler(a.HabitService),
		NoteHandler:     adapterHTTP.NewNoteHandler(a.NoteService),
		SettingsHandler: adapterHTTP.NewSettingsHandler(a.SettingsService),
		StatsHandler:    adapterHTTP.NewStatsHandler(a.StatsService),
		ExportHandler:   adapterHTTP.NewExportHandler(a.ExportService),
		TokenService:    a.TokenService,
		AuthService:     a.AuthService,
		Store:           a.Store,
		Redis:           a.Redis,
		AllowedOrigins:  a.Config.AllowedOrigins,
		RateLimit:       a.Config.RateLimit,
		StartTime:       startTime,
	})
}

// StartReminders loads every habit into the worker schedule and starts it.
func (a *App) StartReminders(ctx context.Context) error {
	if a.Reminders == nil {
		return nil
	}

	habits, err := a.Habits.List(ctx)
	if err != nil {
		return fmt.Errorf("loading habits for reminders: %w", err)
	}
	a.Reminders.Start(ctx)
	a.Reminders.ScheduleAll(habits)
	return nil
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			log.Printf("[APP] close error: %v", err)
		}
	}
	a.closers = nil
}
