package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

func moodPtr(m domain.Mood) *domain.Mood {
	return &m
}

func TestNewNote(t *testing.T) {
	t.Run("Success: Builds key and cleans tags", func(t *testing.T) {
		n, err := domain.NewNote("h1", "2024-06-01", "Felt great", moodPtr(domain.MoodGreat), []string{"img/1.jpg"}, []string{" run ", "run", "outdoor"}, now)

		require.NoError(t, err)
		assert.Equal(t, "h1_2024-06-01", n.ID)
		assert.Equal(t, []string{"run", "outdoor"}, n.Tags)
		assert.Equal(t, 5, n.Mood.Score())
		assert.True(t, n.HasContent())
	})

	t.Run("Error: Invalid mood", func(t *testing.T) {
		_, err := domain.NewNote("h1", "2024-06-01", "x", moodPtr("ecstatic"), nil, nil, now)
		assert.ErrorIs(t, err, domain.ErrInvalidMood)
	})

	t.Run("Error: Invalid date", func(t *testing.T) {
		_, err := domain.NewNote("h1", "June 1st", "x", nil, nil, nil, now)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("Error: Missing habit", func(t *testing.T) {
		_, err := domain.NewNote(" ", "2024-06-01", "x", nil, nil, nil, now)
		assert.ErrorIs(t, err, domain.ErrNoteHabitEmpty)
	})

	t.Run("Error: Blank tag", func(t *testing.T) {
		_, err := domain.NewNote("h1", "2024-06-01", "x", nil, nil, []string{"ok", "  "}, now)
		assert.ErrorIs(t, err, domain.ErrInvalidNoteTags)
	})
}

func TestNote_Edit_KeepsCreatedAt(t *testing.T) {
	n, err := domain.NewNote("h1", "2024-06-01", "first", nil, nil, nil, now)
	require.NoError(t, err)

	later := now.Add(2 * time.Hour)
	require.NoError(t, n.Edit("second", moodPtr(domain.MoodOkay), nil, nil, later))

	assert.Equal(t, now, n.CreatedAt)
	assert.Equal(t, later, n.UpdatedAt)
	assert.Equal(t, "second", n.Content)
}

func TestNote_HasContent(t *testing.T) {
	assert.False(t, (*domain.Note)(nil).HasContent())
	assert.False(t, (&domain.Note{Content: " \n\t "}).HasContent())
	assert.True(t, (&domain.Note{Content: " ok "}).HasContent())
}

func TestMood_Score(t *testing.T) {
	assert.Equal(t, 1, domain.MoodTerrible.Score())
	assert.Equal(t, 3, domain.MoodOkay.Score())
	assert.Equal(t, 0, domain.Mood("meh").Score())
	assert.False(t, domain.Mood("").IsValid())
}
