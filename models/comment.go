package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Comment is a reply to a post. Content is stored raw; rendering happens at display time.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text" json:"content"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	AuthorID  uint      `gorm:"index" json:"author_id"`
	PostID    uint      `gorm:"index" json:"post_id"`
	Author    *Account  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"-"`
}

// NewComment builds an unsaved comment by author on post.
func NewComment(author *Account, post *Post, content string) *Comment {
	c := &Comment{Content: content}
	if author != nil {
		c.AuthorID = author.ID
		c.Author = author
	}
	if post != nil {
		c.PostID = post.ID
		c.Post = post
	}
	return c
}

// CreateComment inserts c without touching the author or post rows. Both must exist.
func CreateComment(db *gorm.DB, c *Comment) error {
	if err := requireRow(db, &Account{}, c.AuthorID, "author"); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	if err := requireRow(db, &Post{}, c.PostID, "post"); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	if err := db.Omit(clause.Associations).Create(c).Error; err != nil {
		return wrapStoreError("create comment", err)
	}
	return nil
}
