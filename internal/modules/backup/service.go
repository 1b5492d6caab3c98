package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	appcfg "github.com/notedesk/core/internal/config"
	"github.com/notedesk/core/internal/models"
	"github.com/notedesk/core/internal/modules/note"
)

// Snapshot is the stored blob: the full decoded note list plus export
// metadata. The shape is stable so older snapshots keep restoring.
type Snapshot struct {
	ExportedAt time.Time         `json:"exported_at"`
	Count      int               `json:"count"`
	Notes      []note.VariantDTO `json:"notes"`
}

type Service struct {
	notes    *note.Service
	store    Store
	filename string
	log      *zap.Logger
}

// NewService picks the store from config: S3 when enabled, local directory
// otherwise.
func NewService(notes *note.Service, cfg *appcfg.AppConfig, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var store Store
	var err error
	if cfg.Backup.S3.Enable {
		store, err = NewS3Store(cfg.Backup.S3)
	} else {
		store, err = NewLocalStore(cfg.Backup.Dir)
	}
	if err != nil {
		return nil, err
	}

	filename := cfg.Backup.Filename
	if filename == "" {
		filename = appcfg.DefaultBackupFilename
	}

	return &Service{notes: notes, store: store, filename: filename, log: log}, nil
}

func newServiceWithStore(notes *note.Service, store Store, filename string) *Service {
	return &Service{notes: notes, store: store, filename: filename, log: zap.NewNop()}
}

// Export snapshots every note in decoded form and replaces the stored blob.
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	variants, err := s.notes.ListVariants()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ExportedAt: time.Now().UTC(),
		Count:      len(variants),
		Notes:      variants,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, s.filename, data); err != nil {
		return nil, err
	}

	s.log.Info("backup written", zap.String("file", s.filename), zap.Int("notes", snap.Count))
	return snap, nil
}

// Latest returns the stored snapshot, or ErrNotFound when none exists.
func (s *Service) Latest(ctx context.Context) (*Snapshot, error) {
	data, err := s.store.Get(ctx, s.filename)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("corrupt backup %q: %w", s.filename, err)
	}
	return &snap, nil
}

// Restore re-encodes the stored variants and swaps the notes table for them.
func (s *Service) Restore(ctx context.Context) (int, error) {
	snap, err := s.Latest(ctx)
	if err != nil {
		return 0, err
	}

	codec := s.notes.Codec()
	rows := make([]models.NoteModel, 0, len(snap.Notes))
	for _, dto := range snap.Notes {
		fields := codec.Encode(dto.Variant())
		rows = append(rows, models.NoteModel{
			Title:   fields.Title,
			Content: fields.Content,
			Type:    fields.Type,
			Color:   fields.Color,
			Status:  fields.Status,
		})
	}

	if err := s.notes.ReplaceAll(rows); err != nil {
		return 0, err
	}
	s.log.Info("backup restored", zap.String("file", s.filename), zap.Int("notes", len(rows)))
	return len(rows), nil
}
