package services

import (
	"context"
	"errors"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

type NoteService struct {
	repo      domain.NoteRepository
	habitRepo domain.HabitRepository
	clock     domain.Clock
}

func NewNoteService(repo domain.NoteRepository, habitRepo domain.HabitRepository, clock domain.Clock) *NoteService {
	return &NoteService{
		repo:      repo,
		habitRepo: habitRepo,
		clock:     clock,
	}
}

type SaveNoteInput struct {
	HabitID string
	Date    string
	Content string
	Mood    string
	Images  []string
	Tags    []string
}

// Save creates the note of a habit for a day or replaces its content,
// keeping the original creation time.
func (s *NoteService) Save(ctx context.Context, input SaveNoteInput) (*domain.Note, error) {
	if _, err := s.habitRepo.GetByID(ctx, input.HabitID); err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = domain.Today(s.clock)
	}

	var mood *domain.Mood
	if input.Mood != "" {
		m := domain.Mood(input.Mood)
		mood = &m
	}

	now := s.clock.Now()
	note, err := s.repo.Get(ctx, input.HabitID, date)
	switch {
	case err == nil:
		if err := note.Edit(input.Content, mood, input.Images, input.Tags, now); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrNoteNotFound):
		note, err = domain.NewNote(input.HabitID, date, input.Content, mood, input.Images, input.Tags, now)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.repo.Save(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, habitID, date string) (*domain.Note, error) {
	if !domain.IsValidDate(date) {
		return nil, domain.ErrInvalidDate
	}
	return s.repo.Get(ctx, habitID, date)
}

func (s *NoteService) ListByHabitID(ctx context.Context, habitID string) ([]*domain.Note, error) {
	if _, err := s.habitRepo.GetByID(ctx, habitID); err != nil {
		return nil, err
	}
	return s.repo.ListByHabitID(ctx, habitID)
}

func (s *NoteService) List(ctx context.Context) ([]*domain.Note, error) {
	return s.repo.List(ctx)
}

func (s *NoteService) Delete(ctx context.Context, habitID, date string) error {
	return s.repo.Delete(ctx, habitID, date)
}

// HasNote reports whether a note with non-blank content exists for the day.
func (s *NoteService) HasNote(ctx context.Context, habitID, date string) (bool, error) {
	note, err := s.repo.Get(ctx, habitID, date)
	if errors.Is(err, domain.ErrNoteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return note.HasContent(), nil
}
