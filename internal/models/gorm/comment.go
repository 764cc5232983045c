package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a discussion entry on an idea. ParentID, when set, points at
// another comment on the same idea.
type Comment struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Content   string    `gorm:"column:content;not null"`
	IdeaID    string    `gorm:"column:idea_id;type:uuid;index;not null"`
	UserID    string    `gorm:"column:user_id;type:uuid;index;not null"`
	ParentID  *string   `gorm:"column:parent_id;type:uuid;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	User    User      `gorm:"foreignKey:UserID"`
	Replies []Comment `gorm:"foreignKey:ParentID"`
	Likes   []Like    `gorm:"foreignKey:CommentID"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Like joins a user to either an idea or a comment, never both. The
// composite unique indexes make the store the authority on double-likes.
type Like struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_like_user_idea;uniqueIndex:idx_like_user_comment"`
	IdeaID    *string   `gorm:"column:idea_id;type:uuid;uniqueIndex:idx_like_user_idea"`
	CommentID *string   `gorm:"column:comment_id;type:uuid;uniqueIndex:idx_like_user_comment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}

func (Like) TableName() string {
	return "likes"
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
