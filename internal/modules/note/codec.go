package note

import (
	"encoding/json"
	"strings"

	"github.com/notedesk/core/internal/models"
	"go.uber.org/zap"
)

// Codec translates between the generic stored row and the typed variants.
// It is the single seam where the four shapes meet the flexible-schema
// content column; nothing outside this file parses or produces that column.
//
// Decode never fails. Malformed structured content degrades to a valid
// variant (empty checklist, raw text as description or prose) and the anomaly
// is logged, so one corrupted row cannot break a full-list fetch.
type Codec struct {
	log *zap.Logger
}

// NewCodec creates a codec. A nil logger silences anomaly reporting.
func NewCodec(log *zap.Logger) *Codec {
	if log == nil {
		log = zap.NewNop()
	}
	return &Codec{log: log}
}

// RowFields is everything Encode produces. Identity and timestamps are
// storage-assigned and never come from a variant.
type RowFields struct {
	Title   string
	Content string
	Type    string
	Color   string
	Status  string
}

// Decode converts a stored row into its typed variant. Unknown or empty type
// decodes as a plain note with the raw content as display text.
func (c *Codec) Decode(row *models.NoteModel) Variant {
	base := VariantBase{
		ID:          row.ID,
		Title:       row.Title,
		DisplayDate: displayDate(row),
		Color:       defaultString(row.Color, models.DefaultNoteColor),
	}

	switch row.Type {
	case models.NoteTypeChecklist:
		return Checklist{VariantBase: base, Items: c.decodeChecklistItems(row)}
	case models.NoteTypeTask:
		return c.decodeTask(row, base)
	case models.NoteTypeArticle:
		return c.decodeArticle(row, base)
	default:
		return TextNote{VariantBase: base, Content: row.Content}
	}
}

// checklistItemPayload accepts both the current object encoding and legacy
// rows that stored bare strings.
type checklistItemPayload struct {
	ID      *int    `json:"id"`
	Text    *string `json:"text"`
	Checked *bool   `json:"checked"`

	legacyText string
}

func (p *checklistItemPayload) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.legacyText = s
		return nil
	}
	type alias checklistItemPayload
	return json.Unmarshal(data, (*alias)(p))
}

func (c *Codec) decodeChecklistItems(row *models.NoteModel) []ChecklistItem {
	if strings.TrimSpace(row.Content) == "" {
		return []ChecklistItem{}
	}

	var payload []checklistItemPayload
	if err := json.Unmarshal([]byte(row.Content), &payload); err != nil {
		c.anomaly(row, "checklist content is not a JSON array", err)
		return []ChecklistItem{}
	}

	items := make([]ChecklistItem, 0, len(payload))
	for i, p := range payload {
		item := ChecklistItem{ID: i + 1}
		switch {
		case p.legacyText != "" || (p.ID == nil && p.Text == nil && p.Checked == nil):
			item.Text = p.legacyText
		default:
			if p.ID != nil && *p.ID != 0 {
				item.ID = *p.ID
			}
			if p.Text != nil {
				item.Text = *p.Text
			}
			if p.Checked != nil {
				item.Checked = *p.Checked
			}
		}
		items = append(items, item)
	}
	return items
}

type taskPayload struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

func (c *Codec) decodeTask(row *models.NoteModel, base VariantBase) Task {
	task := Task{
		VariantBase: base,
		Priority:    PriorityMedium,
		Status:      defaultString(row.Status, models.DefaultTaskStatus),
		DueDate:     DefaultDueDate,
	}

	var payload taskPayload
	if err := json.Unmarshal([]byte(row.Content), &payload); err != nil {
		// Legacy rows stored the description as plain text.
		if strings.TrimSpace(row.Content) != "" {
			c.anomaly(row, "task content is not a JSON object, treating as plain description", err)
		}
		task.Description = row.Content
		return task
	}

	task.Description = payload.Description
	task.Priority = normalizePriority(payload.Priority)
	if payload.DueDate != "" {
		task.DueDate = payload.DueDate
	}
	return task
}

type articlePayload struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (c *Codec) decodeArticle(row *models.NoteModel, base VariantBase) Article {
	article := Article{VariantBase: base, Tags: []string{}}

	var payload articlePayload
	if err := json.Unmarshal([]byte(row.Content), &payload); err != nil {
		// Legacy rows stored the prose directly.
		if strings.TrimSpace(row.Content) != "" {
			c.anomaly(row, "article content is not a JSON object, treating as plain prose", err)
		}
		article.Content = row.Content
		return article
	}

	article.Content = payload.Content
	if payload.Tags != nil {
		article.Tags = payload.Tags
	}
	return article
}

// Encode converts a variant into the client-writable row fields. Structured
// variants serialize their payload as JSON into content; read time and other
// derived fields are never written.
func (c *Codec) Encode(v Variant) RowFields {
	base := v.Base()
	fields := RowFields{
		Title:  base.Title,
		Type:   string(v.Kind()),
		Color:  defaultString(base.Color, models.DefaultNoteColor),
		Status: models.DefaultNoteStatus,
	}

	switch n := v.(type) {
	case Checklist:
		items := n.Items
		if items == nil {
			items = []ChecklistItem{}
		}
		fields.Content = mustMarshal(items)
	case Task:
		fields.Content = mustMarshal(taskPayload{
			Description: n.Description,
			Priority:    normalizePriority(n.Priority),
			DueDate:     defaultString(n.DueDate, DefaultDueDate),
		})
		fields.Status = defaultString(n.Status, models.DefaultTaskStatus)
	case Article:
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		fields.Content = mustMarshal(articlePayload{Content: n.Content, Tags: tags})
	case TextNote:
		fields.Content = n.Content
	}
	return fields
}

func (c *Codec) anomaly(row *models.NoteModel, msg string, err error) {
	c.log.Warn("note decode anomaly",
		zap.Uint("id", row.ID),
		zap.String("type", row.Type),
		zap.String("reason", msg),
		zap.Error(err),
	)
}

func normalizePriority(p string) string {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p
	default:
		return PriorityMedium
	}
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// mustMarshal serializes codec payloads. The payload types contain only
// strings, ints and bools, so marshaling cannot fail.
func mustMarshal(v interface{}) string {
	data, _ := json.Marshal(v)
	return string(data)
}

func displayDate(row *models.NoteModel) string {
	if row.CreatedAt.IsZero() {
		return "Unknown"
	}
	return row.CreatedAt.Format("1/2/2006")
}
