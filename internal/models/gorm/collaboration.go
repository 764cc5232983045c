package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdeaCollaborator joins a non-owner contributor to a published idea.
type IdeaCollaborator struct {
	ID       string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID   string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_collab_user_idea"`
	IdeaID   string    `gorm:"column:idea_id;type:uuid;not null;uniqueIndex:idx_collab_user_idea"`
	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
	Idea Idea `gorm:"foreignKey:IdeaID"`
}

func (IdeaCollaborator) TableName() string {
	return "idea_collaborators"
}

func (c *IdeaCollaborator) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IdeaMentor joins a MENTOR-role advisor to a published idea.
type IdeaMentor struct {
	ID       string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID   string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_mentor_user_idea"`
	IdeaID   string    `gorm:"column:idea_id;type:uuid;not null;uniqueIndex:idx_mentor_user_idea"`
	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
	Idea Idea `gorm:"foreignKey:IdeaID"`
}

func (IdeaMentor) TableName() string {
	return "idea_mentors"
}

func (m *IdeaMentor) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
