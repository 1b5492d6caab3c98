package note

import "github.com/notedesk/core/internal/models"

// CreateNoteDTO is the POST /notes body. Title is the only required field;
// everything else falls back to the row defaults.
type CreateNoteDTO struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
	Type    *string `json:"type"`
	Color   *string `json:"color"`
	Status  *string `json:"status"`
}

// UpdateNoteDTO is the PUT /notes/:id body. Omitted fields keep their prior
// values (coalesce semantics), so every field is a pointer.
type UpdateNoteDTO struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Type    *string `json:"type"`
	Color   *string `json:"color"`
	Status  *string `json:"status"`
}

// VariantDTO is the wire shape of a decoded variant, matching what the web
// client renders: common fields always present, per-type fields only for the
// matching kind.
type VariantDTO struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Date        string          `json:"date"`
	Color       string          `json:"color"`
	Type        string          `json:"type"`
	Content     string          `json:"content,omitempty"`
	Items       []ChecklistItem `json:"items,omitempty"`
	Description string          `json:"description,omitempty"`
	Priority    string          `json:"priority,omitempty"`
	Status      string          `json:"status,omitempty"`
	DueDate     string          `json:"dueDate,omitempty"`
	ReadTime    string          `json:"readTime,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// ToDTO flattens a variant for the wire.
func ToDTO(v Variant) VariantDTO {
	base := v.Base()
	dto := VariantDTO{
		ID:    base.ID,
		Title: base.Title,
		Date:  base.DisplayDate,
		Color: base.Color,
		Type:  string(v.Kind()),
	}

	switch n := v.(type) {
	case TextNote:
		dto.Content = n.Content
	case Checklist:
		dto.Items = n.Items
	case Task:
		dto.Description = n.Description
		dto.Priority = n.Priority
		dto.Status = n.Status
		dto.DueDate = n.DueDate
	case Article:
		dto.Content = n.Content
		dto.Tags = n.Tags
		dto.ReadTime = n.ReadTimeLabel()
	}
	return dto
}

// Variant rebuilds the typed shape from the wire form. Used on restore, where
// the blob holds DTOs and rows must be re-encoded from them.
func (d VariantDTO) Variant() Variant {
	base := VariantBase{ID: d.ID, Title: d.Title, DisplayDate: d.Date, Color: d.Color}

	switch d.Type {
	case models.NoteTypeChecklist:
		items := d.Items
		if items == nil {
			items = []ChecklistItem{}
		}
		return Checklist{VariantBase: base, Items: items}
	case models.NoteTypeTask:
		return Task{
			VariantBase: base,
			Description: d.Description,
			Priority:    d.Priority,
			Status:      d.Status,
			DueDate:     d.DueDate,
		}
	case models.NoteTypeArticle:
		tags := d.Tags
		if tags == nil {
			tags = []string{}
		}
		return Article{VariantBase: base, Content: d.Content, Tags: tags}
	default:
		return TextNote{VariantBase: base, Content: d.Content}
	}
}
