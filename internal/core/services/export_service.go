package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

type ExportService struct {
	repo      domain.HabitRepository
	scheduler ReminderScheduler
	clock     domain.Clock
}

func NewExportService(repo domain.HabitRepository, scheduler ReminderScheduler, clock domain.Clock) *ExportService {
	return &ExportService{
		repo:      repo,
		scheduler: scheduler,
		clock:     clock,
	}
}

func (s *ExportService) Export(ctx context.Context) (*domain.ExportDocument, error) {
	habits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if habits == nil {
		habits = []*domain.Habit{}
	}

	return &domain.ExportDocument{
		Habits:     habits,
		ExportedAt: s.clock.Now().UTC(),
		Version:    domain.ExportVersion,
	}, nil
}

// Import normalises the habits of doc and merges them by id into storage.
// It returns how many habits were written.
func (s *ExportService) Import(ctx context.Context, doc *domain.ExportDocument) (int, error) {
	if doc == nil || !compatibleVersion(doc.Version) {
		return 0, domain.ErrUnsupportedExport
	}

	now := s.clock.Now()
	habits := make([]*domain.Habit, 0, len(doc.Habits))
	for _, h := range doc.Habits {
		if h == nil {
			continue
		}
		h.Normalize(now)
		if h.Name == "" {
			return 0, fmt.Errorf("%w: habit %s has no name", domain.ErrUnsupportedExport, h.ID)
		}
		if h.NotificationEnabled {
			h.NotificationID = ReminderID(h.ID)
		}
		habits = append(habits, h)
	}

	if err := s.repo.Upsert(ctx, habits); err != nil {
		return 0, err
	}

	if s.scheduler != nil {
		for _, h := range habits {
			if h.NotificationEnabled {
				s.scheduler.Schedule(h)
			}
		}
	}

	return len(habits), nil
}

func compatibleVersion(v string) bool {
	major, _, _ := strings.Cut(v, ".")
	current, _, _ := strings.Cut(domain.ExportVersion, ".")
	return v != "" && major == current
}
