package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

var _ domain.NoteRepository = (*NoteRepository)(nil)

// NoteRepository stores every note in one JSON object keyed by
// domain.NoteKey under domain.NotesKey.
type NoteRepository struct {
	store domain.KeyValueStore

	mu sync.Mutex
}

func NewNoteRepository(store domain.KeyValueStore) *NoteRepository {
	return &NoteRepository{store: store}
}

func (r *NoteRepository) load(ctx context.Context) (map[string]*domain.Note, error) {
	raw, err := r.store.Get(ctx, domain.NotesKey)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return make(map[string]*domain.Note), nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: load notes: %w", err)
	}

	notes := make(map[string]*domain.Note)
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("repository: decode notes: %w", err)
	}
	for key, n := range notes {
		if n == nil {
			delete(notes, key)
		}
	}
	return notes, nil
}

func (r *NoteRepository) save(ctx context.Context, notes map[string]*domain.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("repository: encode notes: %w", err)
	}
	if err := r.store.Set(ctx, domain.NotesKey, data); err != nil {
		return fmt.Errorf("repository: save notes: %w", err)
	}
	return nil
}

func (r *NoteRepository) Save(ctx context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.load(ctx)
	if err != nil {
		return err
	}

	stored := *note
	stored.ID = domain.NoteKey(note.HabitID, note.Date)
	notes[stored.ID] = &stored
	return r.save(ctx, notes)
}

func (r *NoteRepository) Get(ctx context.Context, habitID, date string) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	n, ok := notes[domain.NoteKey(habitID, date)]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	return n, nil
}

// ListByHabitID returns the notes of a habit, newest first.
func (r *NoteRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Note, 0)
	for _, n := range notes {
		if n.HabitID == habitID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})
	return list, nil
}

// List returns every note ordered by date, then habit.
func (r *NoteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		list = append(list, n)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].HabitID < list[j].HabitID
	})
	return list, nil
}

func (r *NoteRepository) Delete(ctx context.Context, habitID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.load(ctx)
	if err != nil {
		return err
	}
	key := domain.NoteKey(habitID, date)
	if _, ok := notes[key]; !ok {
		return domain.ErrNoteNotFound
	}

	delete(notes, key)
	return r.save(ctx, notes)
}

func (r *NoteRepository) DeleteByHabitID(ctx context.Context, habitID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for key, n := range notes {
		if n.HabitID == habitID {
			delete(notes, key)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, r.save(ctx, notes)
}
