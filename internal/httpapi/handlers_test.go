package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dashrun/rivals-backend/internal/highscore"
	"github.com/dashrun/rivals-backend/internal/hub"
	"github.com/dashrun/rivals-backend/internal/themes"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	h := hub.NewHub(context.Background(), hub.Deps{
		Tiers:  themes.Default(),
		Scores: highscore.NewMemStore(),
		Tick:   time.Hour,
	})
	return SetupRoutes(h, zap.NewNop())
}

func TestCreateSession_ReturnsCode(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{"player_id":"p1"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Code, 6)
}

func TestCreateSession_EmptyBodyIsFine(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestHealthz(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateCode_Charset(t *testing.T) {
	code, err := GenerateCode()
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, c := range code {
		require.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", string(c))
	}
}
