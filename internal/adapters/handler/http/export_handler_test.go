package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

func TestExportImport(t *testing.T) {
	source := setupAPI(t)
	h := source.createHabit(t, map[string]any{"name": "Stretch"})
	w := source.do(http.MethodPost, "/api/v1/habits/"+h.ID+"/done", nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("Success: Plain round trip", func(t *testing.T) {
		w := source.do(http.MethodGet, "/api/v1/export", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "kanso-export-2024-06-05.json")

		doc := decode[domain.ExportDocument](t, w)
		assert.Equal(t, domain.ExportVersion, doc.Version)
		require.Len(t, doc.Habits, 1)

		target := setupAPI(t)
		w = target.do(http.MethodPost, "/api/v1/import", w.Body.Bytes())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"imported": 1}`, w.Body.String())

		w = target.do(http.MethodGet, "/api/v1/habits/"+h.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[domain.Habit](t, w)
		assert.True(t, got.IsCompletedOn(today))
	})

	t.Run("Success: Sealed round trip", func(t *testing.T) {
		w := source.do(http.MethodGet, "/api/v1/export", nil, adapterHTTP.PassphraseHeader, "s3cret")
		require.Equal(t, http.StatusOK, w.Code)
		sealed := w.Body.Bytes()
		assert.True(t, strings.HasPrefix(string(sealed), "-----BEGIN AGE ENCRYPTED FILE-----"))

		target := setupAPI(t)
		w = target.do(http.MethodPost, "/api/v1/import", sealed, adapterHTTP.PassphraseHeader, "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = target.do(http.MethodPost, "/api/v1/import", sealed, adapterHTTP.PassphraseHeader, "s3cret")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Fail: Unsupported documents", func(t *testing.T) {
		target := setupAPI(t)

		w := target.do(http.MethodPost, "/api/v1/import", `not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = target.do(http.MethodPost, "/api/v1/import", `{"habits": [], "version": "2.0.0"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
