package domain

import (
	"errors"
	"time"
)

const ExportVersion = "1.0.0"

var ErrUnsupportedExport = errors.New("unsupported export document")

// ExportDocument is the shareable backup of all habits.
type ExportDocument struct {
	Habits     []*Habit  `json:"habits"`
	ExportedAt time.Time `json:"exported_at"`
	Version    string    `json:"version"`
}
