package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/archive"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

var badRequestErrors = []error{
	domain.ErrHabitNameEmpty,
	domain.ErrHabitNameTooLong,
	domain.ErrInvalidMetricType,
	domain.ErrInvalidFrequency,
	domain.ErrInvalidGoal,
	domain.ErrInvalidDaysPerWeek,
	domain.ErrInvalidReminder,
	domain.ErrReminderWithoutTime,
	domain.ErrInvalidDate,
	domain.ErrInvalidMood,
	domain.ErrNoteHabitEmpty,
	domain.ErrNoteTooLong,
	domain.ErrTooManyImages,
	domain.ErrInvalidNoteTags,
	domain.ErrInvalidTheme,
	domain.ErrInvalidWeekStart,
	domain.ErrUsernameTooLong,
	domain.ErrInvalidPeriod,
	domain.ErrInvalidRange,
	domain.ErrPasscodeTooShort,
	domain.ErrPasscodeNotSet,
	domain.ErrUnsupportedExport,
	archive.ErrEmptyPassphrase,
	archive.ErrCorrupted,
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrHabitNotFound), errors.Is(err, domain.ErrNoteNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrHabitExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidPasscode), errors.Is(err, archive.ErrWrongPassphrase):
		return http.StatusUnauthorized
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// respondError maps domain errors to status codes. Unknown errors are logged
// and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
