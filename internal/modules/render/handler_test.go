package render

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/notedesk/core/internal/models"
	"github.com/notedesk/core/internal/modules/note"
)

func strPtr(s string) *string { return &s }

func testRouter(t *testing.T) (*gin.Engine, *note.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.NoteModel{}))
	svc := note.NewService(db, note.NewCodec(nil))

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, svc
}

func TestNoteHTMLRendersArticleProse(t *testing.T) {
	r, svc := testRouter(t)
	row, err := svc.Create(&note.CreateNoteDTO{
		Title:   "post",
		Content: strPtr(`{"content":"# Heading\n\nbody text","tags":["go"]}`),
		Type:    strPtr(models.NoteTypeArticle),
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/notes/%d/html", row.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1")
	assert.Contains(t, w.Body.String(), "body text")
}

func TestNoteHTMLRejectsChecklist(t *testing.T) {
	r, svc := testRouter(t)
	row, err := svc.Create(&note.CreateNoteDTO{
		Title:   "list",
		Content: strPtr(`[{"id":1,"text":"a","checked":false}]`),
		Type:    strPtr(models.NoteTypeChecklist),
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/notes/%d/html", row.ID), nil))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestNoteHTMLUnknownNote(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes/99/html", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
