package domain

import (
	"context"
	"errors"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrNoteNotFound  = errors.New("note not found")
	ErrKeyNotFound   = errors.New("key not found")
	ErrHabitExists   = errors.New("habit with this id already exists")
)

// Fixed storage keys for the whole-collection blobs.
const (
	HabitsKey   = "habits"
	NotesKey    = "notes"
	SettingsKey = "settings"
)

// KeyValueStore is the persistence boundary: opaque JSON blobs under string keys.
type KeyValueStore interface {
	// Get returns ErrKeyNotFound when nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte) error

	// Delete is idempotent.
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
}

type HabitRepository interface {
	Create(ctx context.Context, habit *Habit) error

	GetByID(ctx context.Context, id string) (*Habit, error)

	// List returns every habit in creation order.
	List(ctx context.Context) ([]*Habit, error)

	Update(ctx context.Context, habit *Habit) error

	// Mutate loads the habit, applies fn and writes it back when fn reports a
	// change, all under one lock so concurrent mutations of a habit never
	// overwrite each other. Nothing is written when fn fails.
	Mutate(ctx context.Context, id string, fn func(h *Habit) (bool, error)) (*Habit, error)

	Delete(ctx context.Context, id string) error

	// Upsert inserts or replaces habits by id in a single write.
	Upsert(ctx context.Context, habits []*Habit) error
}

type NoteRepository interface {
	// Save inserts or replaces the note stored under its key.
	Save(ctx context.Context, note *Note) error

	Get(ctx context.Context, habitID, date string) (*Note, error)

	ListByHabitID(ctx context.Context, habitID string) ([]*Note, error)

	List(ctx context.Context) ([]*Note, error)

	Delete(ctx context.Context, habitID, date string) error

	// DeleteByHabitID removes every note of a habit and returns how many were removed.
	DeleteByHabitID(ctx context.Context, habitID string) (int, error)
}

type SettingsRepository interface {
	// Get returns stored settings merged over defaults.
	Get(ctx context.Context) (Settings, error)

	Save(ctx context.Context, s Settings) error

	Reset(ctx context.Context) error
}
