package note

import (
	"math"
	"strconv"
	"strings"

	"github.com/notedesk/core/internal/models"
)

// Kind discriminates the four in-memory note shapes.
type Kind string

const (
	KindNote      Kind = models.NoteTypeNote
	KindChecklist Kind = models.NoteTypeChecklist
	KindTask      Kind = models.NoteTypeTask
	KindArticle   Kind = models.NoteTypeArticle
)

// Task priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task lifecycle states, stored in the row's status column.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusDone       = "done"
)

// DefaultDueDate is the display placeholder for tasks without a due date.
const DefaultDueDate = "No due date"

// wordsPerMinute drives the derived article read time.
const wordsPerMinute = 200

// VariantBase carries the fields common to every variant.
type VariantBase struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	DisplayDate string `json:"date"`
	Color       string `json:"color"`
}

// Variant is the in-memory sum type a stored row decodes into. Exactly one
// concrete shape is active per row, chosen by the row's type column.
type Variant interface {
	Kind() Kind
	Base() VariantBase
}

// TextNote is a plain freeform note; its content is literal display text.
type TextNote struct {
	VariantBase
	Content string `json:"content"`
}

func (TextNote) Kind() Kind          { return KindNote }
func (n TextNote) Base() VariantBase { return n.VariantBase }

// ChecklistItem is one entry of a checklist. IDs are small ordinals unique
// within the note, not globally unique.
type ChecklistItem struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Checklist is an ordered sequence of checkable items.
type Checklist struct {
	VariantBase
	Items []ChecklistItem `json:"items"`
}

func (Checklist) Kind() Kind          { return KindChecklist }
func (n Checklist) Base() VariantBase { return n.VariantBase }

// Task is a todo item with a priority and lifecycle status.
type Task struct {
	VariantBase
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
}

func (Task) Kind() Kind          { return KindTask }
func (n Task) Base() VariantBase { return n.VariantBase }

// Article is a long-form prose note with tags. Read time is derived from the
// prose on every decode and never persisted, so it cannot drift from the text.
type Article struct {
	VariantBase
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (Article) Kind() Kind          { return KindArticle }
func (n Article) Base() VariantBase { return n.VariantBase }

// ReadTime returns the estimated reading time in whole minutes, at least 1.
func (n Article) ReadTime() int {
	words := len(strings.Fields(n.Content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// ReadTimeLabel renders the read time the way the UI displays it.
func (n Article) ReadTimeLabel() string {
	return strconv.Itoa(n.ReadTime()) + " min read"
}
