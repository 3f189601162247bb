package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidMood     = errors.New("invalid mood (must be terrible, bad, okay, good or great)")
	ErrNoteHabitEmpty  = errors.New("note habit id is required")
	ErrNoteTooLong     = errors.New("note content is too long (max 5000 chars)")
	ErrTooManyImages   = errors.New("too many images attached (max 10)")
	ErrInvalidNoteTags = errors.New("note tags cannot be empty strings")
)

const (
	MaxNoteLen    = 5000
	MaxNoteImages = 10
)

type Mood string

const (
	MoodTerrible Mood = "terrible"
	MoodBad      Mood = "bad"
	MoodOkay     Mood = "okay"
	MoodGood     Mood = "good"
	MoodGreat    Mood = "great"
)

// Score maps the mood onto the 1..5 scale used by trend charts; unknown moods score 0.
func (m Mood) Score() int {
	switch m {
	case MoodTerrible:
		return 1
	case MoodBad:
		return 2
	case MoodOkay:
		return 3
	case MoodGood:
		return 4
	case MoodGreat:
		return 5
	default:
		return 0
	}
}

func (m Mood) IsValid() bool {
	return m.Score() > 0
}

// Note is a journal entry attached to one habit on one day.
type Note struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	Mood      *Mood     `json:"mood,omitempty"`
	Images    []string  `json:"images,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteKey builds the storage key of a note: "<habitId>_<date>".
func NoteKey(habitID, date string) string {
	return habitID + "_" + date
}

func NewNote(habitID, date, content string, mood *Mood, images, tags []string, now time.Time) (*Note, error) {
	n := &Note{
		ID:        NoteKey(habitID, date),
		HabitID:   habitID,
		Date:      date,
		CreatedAt: now.UTC(),
	}
	if err := n.Edit(content, mood, images, tags, now); err != nil {
		return nil, err
	}
	return n, nil
}

// Edit replaces the editable fields, keeping the creation time.
func (n *Note) Edit(content string, mood *Mood, images, tags []string, now time.Time) error {
	if strings.TrimSpace(n.HabitID) == "" {
		return ErrNoteHabitEmpty
	}
	if !IsValidDate(n.Date) {
		return ErrInvalidDate
	}
	if len(content) > MaxNoteLen {
		return ErrNoteTooLong
	}
	if mood != nil && !mood.IsValid() {
		return ErrInvalidMood
	}
	if len(images) > MaxNoteImages {
		return ErrTooManyImages
	}

	cleanTags := make([]string, 0, len(tags))
	seen := make(map[string]bool)
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			return ErrInvalidNoteTags
		}
		if !seen[t] {
			seen[t] = true
			cleanTags = append(cleanTags, t)
		}
	}

	n.Content = content
	n.Mood = mood
	n.Images = images
	n.Tags = cleanTags
	if len(n.Tags) == 0 {
		n.Tags = nil
	}
	n.UpdatedAt = now.UTC()
	return nil
}

// HasContent is the existence test used by the UI: whitespace-only notes do not count.
func (n *Note) HasContent() bool {
	return n != nil && strings.TrimSpace(n.Content) != ""
}
