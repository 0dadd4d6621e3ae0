package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehatin/progress-api/internal/application/adapter/adaptertest"
	"github.com/sehatin/progress-api/internal/application/usecase/progress"
	"github.com/sehatin/progress-api/internal/domain/entity"
)

func newProgressEngine(store *adaptertest.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	progressRepo := store.Progress()
	cache := adaptertest.NewCache()
	recalculator := progress.NewRecalculator(store, progressRepo, cache)
	ctrl := NewProgressController(
		progress.NewCreateUserProgressUseCase(store, progressRepo, store, recalculator),
		progress.NewGetUserProgressUseCase(progressRepo, cache),
		progress.NewClearUserProgressUseCase(store, progressRepo, store, recalculator),
	)

	engine := gin.New()
	engine.POST("/api/v1/:user_id/create-progress/", ctrl.Create)
	engine.GET("/api/v1/:user_id/progress/", ctrl.Get)
	engine.DELETE("/api/v1/:user_id/clear-progress/", ctrl.Clear)
	return engine
}

func serve(t *testing.T, engine *gin.Engine, method, path string) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestProgressController_Create(t *testing.T) {
	engine := newProgressEngine(adaptertest.NewStore())

	status, body := serve(t, engine, http.MethodPost, "/api/v1/4/create-progress/")
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 4.0, body["user_id"])

	status, _ = serve(t, engine, http.MethodPost, "/api/v1/4/create-progress/")
	assert.Equal(t, http.StatusOK, status)
}

func TestProgressController_CreateAfterConcurrentInsert(t *testing.T) {
	store := adaptertest.NewStore()
	existing := entity.NewUserProgress(6)
	existing.OverallProgressPercentage = 25
	require.NoError(t, store.Progress().Create(context.Background(), existing))
	store.MissProgressReads = 1

	engine := newProgressEngine(store)

	status, body := serve(t, engine, http.MethodPost, "/api/v1/6/create-progress/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 25.0, body["overall_progress_percentage"])
}

func TestProgressController_Errors(t *testing.T) {
	engine := newProgressEngine(adaptertest.NewStore())

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"get not initialized", http.MethodGet, "/api/v1/9/progress/", http.StatusNotFound, "PRG-010001"},
		{"clear not initialized", http.MethodDelete, "/api/v1/9/clear-progress/", http.StatusNotFound, "PRG-010001"},
		{"zero user id", http.MethodGet, "/api/v1/0/progress/", http.StatusUnprocessableEntity, "PRG-020001"},
		{"negative user id", http.MethodPost, "/api/v1/-3/create-progress/", http.StatusUnprocessableEntity, "PRG-020001"},
		{"non-numeric user id", http.MethodGet, "/api/v1/abc/progress/", http.StatusUnprocessableEntity, "PRG-020001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serve(t, engine, tt.method, tt.path)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body["code"])
		})
	}
}
