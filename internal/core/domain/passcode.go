package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasscodeTooShort = errors.New("passcode must be at least 4 characters long")
	ErrInvalidPasscode  = errors.New("invalid passcode")
	ErrPasscodeNotSet   = errors.New("no passcode configured")
)

const (
	MinPasscodeLen = 4
	passcodeCost   = 12
)

// SetPasscode hashes and stores the passcode that guards the API.
func (s *Settings) SetPasscode(plain string, now time.Time) error {
	if utf8.RuneCountInString(plain) < MinPasscodeLen {
		return ErrPasscodeTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), passcodeCost)
	if err != nil {
		return err
	}

	s.PasscodeHash = string(hash)
	s.UpdatedAt = now.UTC()
	return nil
}

// ClearPasscode unlocks the API again.
func (s *Settings) ClearPasscode(now time.Time) {
	s.PasscodeHash = ""
	s.UpdatedAt = now.UTC()
}

// PasscodeFingerprint identifies the current passcode without exposing its
// hash. Every SetPasscode yields a new one since bcrypt salts each hash.
func (s Settings) PasscodeFingerprint() string {
	if s.PasscodeHash == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s.PasscodeHash))
	return hex.EncodeToString(sum[:8])
}

func (s *Settings) CheckPasscode(plain string) error {
	if s.PasscodeHash == "" {
		return ErrPasscodeNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasscodeHash), []byte(plain)); err != nil {
		return ErrInvalidPasscode
	}
	return nil
}
