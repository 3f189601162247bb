// Package archive seals export documents with an age scrypt passphrase so a
// backup file can be stored or shared without exposing journal data.
package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

var (
	ErrEmptyPassphrase = errors.New("passphrase cannot be empty")
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrCorrupted       = errors.New("archive is damaged or not an age file")
)

// IsSealed reports whether raw looks like an armored age file.
func IsSealed(raw []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte(armor.Header))
}

func Seal(doc domain.ExportDocument, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	plain, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing export: %w", err)
	}

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age recipient: %w", err)
	}

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)

	w, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing age encryption: %w", err)
	}
	if _, err := w.Write(plain); err != nil {
		return nil, fmt.Errorf("encrypting export: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return nil, fmt.Errorf("finalizing armor: %w", err)
	}

	return buf.Bytes(), nil
}

func Open(raw []byte, passphrase string) (domain.ExportDocument, error) {
	var doc domain.ExportDocument
	if passphrase == "" {
		return doc, ErrEmptyPassphrase
	}

	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return doc, fmt.Errorf("creating age identity: %w", err)
	}

	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(raw)), identity)
	if err != nil {
		// age has no typed error for a bad passphrase.
		msg := err.Error()
		if strings.Contains(msg, "no identity matched") || strings.Contains(msg, "incorrect") {
			return doc, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
		}
		return doc, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	plain, err := io.ReadAll(r)
	if err != nil {
		return doc, fmt.Errorf("%w: reading decrypted data: %v", ErrCorrupted, err)
	}
	if err := json.Unmarshal(plain, &doc); err != nil {
		return doc, fmt.Errorf("%w: parsing export JSON: %v", ErrCorrupted, err)
	}
	return doc, nil
}

// Decode accepts both plain JSON exports and sealed ones.
func Decode(raw []byte, passphrase string) (domain.ExportDocument, error) {
	if IsSealed(raw) {
		return Open(raw, passphrase)
	}

	var doc domain.ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w: %v", domain.ErrUnsupportedExport, err)
	}
	return doc, nil
}
