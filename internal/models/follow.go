package models

import "time"

// Follow is a directed edge in the follow graph: User receives Author's
// posts in their personal feed. The (user, author) pair is unique and a
// user may not follow themselves; both rules are enforced at the schema
// level so concurrent follow calls collapse to a single surviving row.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follows_pair;check:chk_follows_no_self,user_id <> author_id" json:"user_id"`
	AuthorID  uint      `gorm:"not null;index;uniqueIndex:idx_follows_pair" json:"author_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
