package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/notedesk/core/internal/models"
)

func testSvc(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OptionModel{}))
	return NewService(db)
}

func TestSetIsUpsert(t *testing.T) {
	svc := testSvc(t)

	row, err := svc.Set("theme", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", row.Value)

	row, err = svc.Set("theme", "light")
	require.NoError(t, err)
	assert.Equal(t, "light", row.Value)

	rows, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestValueReportsExistence(t *testing.T) {
	svc := testSvc(t)

	_, ok := svc.Value("missing")
	assert.False(t, ok)

	_, err := svc.Set("chat_system_prompt", "be terse")
	require.NoError(t, err)

	v, ok := svc.Value("chat_system_prompt")
	assert.True(t, ok)
	assert.Equal(t, "be terse", v)
}

func TestDeleteReportsMissingKey(t *testing.T) {
	svc := testSvc(t)

	existed, err := svc.Delete("nope")
	require.NoError(t, err)
	assert.False(t, existed)

	_, err = svc.Set("k", "v")
	require.NoError(t, err)

	existed, err = svc.Delete("k")
	require.NoError(t, err)
	assert.True(t, existed)

	row, err := svc.Get("k")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestSettingsEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := testSvc(t)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/settings/theme", strings.NewReader(`{"value":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings/theme", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "dark", data["value"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/settings/theme", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/settings/theme", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
