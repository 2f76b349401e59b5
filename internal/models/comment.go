package models

import "time"

// Comment is a reply on a post. Comments are deleted together with their
// post; comment text is subject to the content policy on the write path.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time `gorm:"index;<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
