package models

import "time"

// PostOrder is the default display ordering for every feed view:
// newest first, ties broken by author identity ascending.
const PostOrder = "created_at DESC, author_id ASC"

// Post is an authored publication, optionally assigned to a group and
// optionally carrying an image attachment reference. The creation
// timestamp is set once at insert time and never updated.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	GroupID   *uint     `gorm:"index" json:"group_id"`
	Group     *Group    `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	ImagePath string    `gorm:"size:255" json:"image_path,omitempty"`
	CreatedAt time.Time `gorm:"index;<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
