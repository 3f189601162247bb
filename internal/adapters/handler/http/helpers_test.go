package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/kvstore"
	"github.com/comitanigiacomo/kanso-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/services"
)

// 2024-06-05 is a Wednesday; the current week starts on Sunday 2024-06-02.
var now = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

const today = "2024-06-05"

type api struct {
	router *gin.Engine
	store  *kvstore.MemoryStore
	token  string
}

func setupAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := domain.FixedClock{At: now}
	store := kvstore.NewMemoryStore()

	habitRepo := repository.NewHabitRepository(store, clock)
	noteRepo := repository.NewNoteRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	tokens := services.NewTokenService("test-secret", "kanso-test", time.Hour, settingsRepo)
	auth := services.NewAuthService(settingsRepo, tokens, clock)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(auth),
		HabitHandler:    adapterHTTP.NewHabitHandler(services.NewHabitService(habitRepo, noteRepo, nil, clock)),
		NoteHandler:     adapterHTTP.NewNoteHandler(services.NewNoteService(noteRepo, habitRepo, clock)),
		SettingsHandler: adapterHTTP.NewSettingsHandler(services.NewSettingsService(settingsRepo, clock)),
		StatsHandler:    adapterHTTP.NewStatsHandler(services.NewStatsService(habitRepo, noteRepo, settingsRepo, clock)),
		ExportHandler:   adapterHTTP.NewExportHandler(services.NewExportService(habitRepo, nil, clock)),
		TokenService:    tokens,
		AuthService:     auth,
		Store:           store,
		StartTime:       now,
	})

	return &api{router: router, store: store}
}

func (a *api) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *api) createHabit(t *testing.T, body map[string]any) domain.Habit {
	t.Helper()
	w := a.do(http.MethodPost, "/api/v1/habits", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[domain.Habit](t, w)
}
