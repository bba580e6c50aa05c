package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute-registry-backend/config"
	"institute-registry-backend/internal/service"
	"institute-registry-backend/internal/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	students := store.NewMemStudentStore()
	h := NewHandler(
		service.NewInstituteService(store.NewMemInstituteStore(), students, time.Minute),
		service.NewStudentService(students, time.Minute),
		service.NewNameService(store.NewMemNameStore(), time.Minute),
	)
	cfg := &config.Config{
		Server: config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000},
		Cache:  config.CacheConfig{TTL: time.Minute},
	}
	return NewRouter(h, cfg)
}

func TestCreateInstitute_MalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/institutes", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "malformed request body")
}

func TestGetInstitute_InvalidID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/institutes/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestDeleteInstitute_Missing(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/institutes/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateInstitute_FieldErrors(t *testing.T) {
	router := newTestRouter()

	body := `{"name":"x","code":"bad","address":"somewhere"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/institutes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "request validation failed")
	assert.Contains(t, w.Body.String(), `"name"`)
	assert.Contains(t, w.Body.String(), `"code"`)
}
