package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/aiblog/utils"
)

// Post is an article written by one account. SummaryHTML and ContentHTML are derived
// from the raw markdown fields and are recomputed on every write.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Summary     string    `gorm:"type:text" json:"summary"`
	SummaryHTML string    `gorm:"type:text" json:"summary_html"`
	Content     string    `gorm:"type:text" json:"content"`
	ContentHTML string    `gorm:"type:text" json:"content_html"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	AuthorID    uint      `gorm:"index" json:"author_id"`
	Author      *Account  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments    []Comment `gorm:"foreignKey:PostID" json:"-"`
}

// NewPost builds an unsaved post by author with both HTML fields rendered.
func NewPost(author *Account, title, summary, content string) *Post {
	p := &Post{Title: title}
	if author != nil {
		p.AuthorID = author.ID
		p.Author = author
	}
	p.SetSummary(summary)
	p.SetContent(content)
	return p
}

// SetSummary assigns the raw summary and re-renders SummaryHTML.
func (p *Post) SetSummary(summary string) {
	p.Summary = summary
	p.SummaryHTML = utils.RenderMarkdown(summary)
}

// SetContent assigns the raw content and re-renders ContentHTML.
func (p *Post) SetContent(content string) {
	p.Content = content
	p.ContentHTML = utils.RenderMarkdown(content)
}

// derivedColumns pairs each raw markdown column with the HTML column rendered from it.
var derivedColumns = []struct {
	raw, rawField   string
	html, htmlField string
}{
	{"summary", "Summary", "summary_html", "SummaryHTML"},
	{"content", "Content", "content_html", "ContentHTML"},
}

// BeforeSave keeps the derived HTML in step with the raw fields on every write path:
// Create and Save re-render the struct, Update/Updates re-render the columns being set.
// Writing an HTML column without its raw column is rejected.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	switch dest := tx.Statement.Dest.(type) {
	case map[string]interface{}:
		return deriveHTMLColumns(dest)
	case *Post:
		if dest != p {
			return deriveHTMLFields(tx.Statement, dest)
		}
	case Post:
		return deriveHTMLFields(tx.Statement, &dest)
	}
	p.SetSummary(p.Summary)
	p.SetContent(p.Content)
	return nil
}

// deriveHTMLColumns handles Update(column, value) and Updates(map).
func deriveHTMLColumns(values map[string]interface{}) error {
	for _, col := range derivedColumns {
		raw, hasRaw := values[col.raw]
		if v, ok := values[col.rawField]; ok {
			raw, hasRaw = v, true
			delete(values, col.rawField)
			values[col.raw] = v
		}
		_, hasHTML := values[col.html]
		if _, ok := values[col.htmlField]; ok {
			hasHTML = true
		}
		delete(values, col.html)
		delete(values, col.htmlField)

		if !hasRaw {
			if hasHTML {
				return fmt.Errorf("update %s: %w", col.html, ErrDerivedField)
			}
			continue
		}
		text, err := rawText(raw)
		if err != nil {
			return fmt.Errorf("update %s: %w", col.raw, err)
		}
		values[col.html] = utils.RenderMarkdown(text)
	}
	return nil
}

// deriveHTMLFields handles Updates(Post{...}), which writes only non-zero fields.
func deriveHTMLFields(stmt *gorm.Statement, src *Post) error {
	if src.Summary != "" {
		stmt.SetColumn("SummaryHTML", utils.RenderMarkdown(src.Summary))
	} else if src.SummaryHTML != "" {
		return fmt.Errorf("update summary_html: %w", ErrDerivedField)
	}
	if src.Content != "" {
		stmt.SetColumn("ContentHTML", utils.RenderMarkdown(src.Content))
	} else if src.ContentHTML != "" {
		return fmt.Errorf("update content_html: %w", ErrDerivedField)
	}
	return nil
}

func rawText(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case *string:
		if t == nil {
			return "", nil
		}
		return *t, nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// CreatePost inserts p without touching its author row. The author must exist.
func CreatePost(db *gorm.DB, p *Post) error {
	if err := requireRow(db, &Account{}, p.AuthorID, "author"); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	if err := db.Omit(clause.Associations).Create(p).Error; err != nil {
		return wrapStoreError("create post", err)
	}
	return nil
}

// SavePost writes every field of an existing post.
func SavePost(db *gorm.DB, p *Post) error {
	if err := db.Omit(clause.Associations).Save(p).Error; err != nil {
		return wrapStoreError("save post", err)
	}
	return nil
}

// requireRow fails with ErrAttributeResolution unless model has a row with primary key id.
func requireRow(db *gorm.DB, model interface{}, id uint, name string) error {
	if id == 0 {
		return fmt.Errorf("%s not set: %w", name, ErrAttributeResolution)
	}
	var n int64
	if err := db.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", name, id, ErrAttributeResolution)
	}
	return nil
}
