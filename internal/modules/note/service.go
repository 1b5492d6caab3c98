package note

import (
	"errors"
	"strings"

	"github.com/notedesk/core/internal/models"
	"gorm.io/gorm"
)

// ErrTitleRequired rejects creates with a missing title before any row is
// written.
var ErrTitleRequired = errors.New("title is required")

type Service struct {
	db    *gorm.DB
	codec *Codec
}

func NewService(db *gorm.DB, codec *Codec) *Service {
	return &Service{db: db, codec: codec}
}

// Codec exposes the codec for collaborators (backup, render).
func (s *Service) Codec() *Codec { return s.codec }

// List returns all rows, newest first. No pagination; the workspace is
// single-user and the list is expected to stay small.
func (s *Service) List() ([]models.NoteModel, error) {
	var notes []models.NoteModel
	if err := s.db.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// ListVariants returns the decoded shape of every row. A corrupted row
// degrades inside the codec instead of failing the whole fetch.
func (s *Service) ListVariants() ([]VariantDTO, error) {
	rows, err := s.List()
	if err != nil {
		return nil, err
	}
	out := make([]VariantDTO, len(rows))
	for i := range rows {
		out[i] = ToDTO(s.codec.Decode(&rows[i]))
	}
	return out, nil
}

// Get returns one row, or (nil, nil) when the id is unknown.
func (s *Service) Get(id uint) (*models.NoteModel, error) {
	var row models.NoteModel
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts a new row. Title is required; other fields default.
func (s *Service) Create(dto *CreateNoteDTO) (*models.NoteModel, error) {
	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrTitleRequired
	}

	row := models.NoteModel{
		Title:  dto.Title,
		Type:   models.DefaultNoteType,
		Color:  models.DefaultNoteColor,
		Status: models.DefaultNoteStatus,
	}
	if dto.Content != nil {
		row.Content = *dto.Content
	}
	if dto.Type != nil && strings.TrimSpace(*dto.Type) != "" {
		row.Type = *dto.Type
	}
	if dto.Color != nil && strings.TrimSpace(*dto.Color) != "" {
		row.Color = *dto.Color
	}
	if dto.Status != nil && strings.TrimSpace(*dto.Status) != "" {
		row.Status = *dto.Status
	}

	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update patches a row. Omitted fields keep their prior values; updated_at is
// refreshed on every successful patch. Returns (nil, nil) when id is unknown.
func (s *Service) Update(id uint, dto *UpdateNoteDTO) (*models.NoteModel, error) {
	row, err := s.Get(id)
	if err != nil || row == nil {
		return row, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Type != nil {
		updates["type"] = *dto.Type
	}
	if dto.Color != nil {
		updates["color"] = *dto.Color
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(row).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return row, nil
}

// Delete removes a row and returns its prior contents for UI confirmation.
// Returns (nil, nil) when the id is unknown; nothing is removed in that case.
func (s *Service) Delete(id uint) (*models.NoteModel, error) {
	row, err := s.Get(id)
	if err != nil || row == nil {
		return row, err
	}
	if err := s.db.Delete(&models.NoteModel{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// ReplaceAll swaps the table contents for the given rows. Used by restore;
// single-user, so no cross-row transactional guarantee is attempted.
func (s *Service) ReplaceAll(rows []models.NoteModel) error {
	if err := s.db.Where("1 = 1").Delete(&models.NoteModel{}).Error; err != nil {
		return err
	}
	for i := range rows {
		if err := s.db.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
