package backup

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/notedesk/core/internal/models"
	"github.com/notedesk/core/internal/modules/note"
)

func testNoteService(t *testing.T) *note.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.NoteModel{}))
	return note.NewService(db, note.NewCodec(nil))
}

func strPtr(s string) *string { return &s }

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = store.Get(ctx, "workspace-notes.json")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "workspace-notes.json", []byte(`{"count":0}`)))
	data, err := store.Get(ctx, "workspace-notes.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0}`, string(data))

	// a second put replaces the blob
	require.NoError(t, store.Put(ctx, "workspace-notes.json", []byte(`{"count":1}`)))
	data, err = store.Get(ctx, "workspace-notes.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1}`, string(data))
}

func TestExportThenRestore(t *testing.T) {
	notes := testNoteService(t)
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	svc := newServiceWithStore(notes, store, "workspace-notes.json")
	ctx := context.Background()

	_, err = notes.Create(&note.CreateNoteDTO{Title: "plain", Content: strPtr("hello")})
	require.NoError(t, err)
	_, err = notes.Create(&note.CreateNoteDTO{
		Title:   "groceries",
		Content: strPtr(`[{"id":1,"text":"milk","checked":true}]`),
		Type:    strPtr(models.NoteTypeChecklist),
	})
	require.NoError(t, err)

	snap, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Count)

	// mutate, then restore the snapshot over the changes
	_, err = notes.Create(&note.CreateNoteDTO{Title: "post-backup noise"})
	require.NoError(t, err)

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, restored)

	variants, err := notes.ListVariants()
	require.NoError(t, err)
	require.Len(t, variants, 2)

	byTitle := map[string]note.VariantDTO{}
	for _, v := range variants {
		byTitle[v.Title] = v
	}
	require.Contains(t, byTitle, "groceries")
	cl := byTitle["groceries"]
	assert.Equal(t, "checklist", cl.Type)
	require.Len(t, cl.Items, 1)
	assert.Equal(t, "milk", cl.Items[0].Text)
	assert.True(t, cl.Items[0].Checked)

	assert.Equal(t, "hello", byTitle["plain"].Content)
}

func TestLatestWithoutBackup(t *testing.T) {
	notes := testNoteService(t)
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	svc := newServiceWithStore(notes, store, "workspace-notes.json")

	_, err = svc.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
