package models

// Note type discriminator values. Type decides how Content is interpreted:
// for "note" it is display text, for the other three it is a JSON payload
// serialized into the text column.
const (
	NoteTypeNote      = "note"
	NoteTypeChecklist = "checklist"
	NoteTypeTask      = "task"
	NoteTypeArticle   = "article"
)

// Defaults applied on create when the client omits a field.
const (
	DefaultNoteType   = NoteTypeNote
	DefaultNoteColor  = "#ffffff"
	DefaultNoteStatus = "active"
	DefaultTaskStatus = "todo"
)

// NoteModel is the single persisted shape for all four note variants.
type NoteModel struct {
	Base
	Title   string `json:"title"   gorm:"not null"`
	Content string `json:"content" gorm:"type:longtext"`
	Type    string `json:"type"    gorm:"default:note;index"`
	Color   string `json:"color"   gorm:"default:#ffffff"`
	Status  string `json:"status"  gorm:"default:active;index"`
}

func (NoteModel) TableName() string { return "notes" }
