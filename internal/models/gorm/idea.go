package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdeaSubmission is a pending proposal awaiting moderation. It is retained
// after review as an audit trail; approval copies it into an Idea.
type IdeaSubmission struct {
	ID                 string     `gorm:"column:id;primaryKey;type:uuid"`
	Title              string     `gorm:"column:title;not null"`
	Caption            *string    `gorm:"column:caption"`
	Description        string     `gorm:"column:description;not null"`
	PriorOdrExperience *string    `gorm:"column:prior_odr_experience"`
	OwnerID            string     `gorm:"column:owner_id;type:uuid;index;not null"`
	Reviewed           bool       `gorm:"column:reviewed;default:false"`
	Approved           bool       `gorm:"column:approved;default:false"`
	Rejected           bool       `gorm:"column:rejected;default:false"`
	RejectionReason    *string    `gorm:"column:rejection_reason"`
	ReviewedBy         *string    `gorm:"column:reviewed_by;type:uuid"`
	ReviewedAt         *time.Time `gorm:"column:reviewed_at"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`

	Owner User `gorm:"foreignKey:OwnerID"`
}

func (IdeaSubmission) TableName() string {
	return "idea_submissions"
}

func (s *IdeaSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Idea is a published proposal. Only approved ideas are visible through the
// public read paths.
type Idea struct {
	ID                 string     `gorm:"column:id;primaryKey;type:uuid"`
	Title              string     `gorm:"column:title;not null"`
	Caption            *string    `gorm:"column:caption"`
	Description        string     `gorm:"column:description;not null"`
	PriorOdrExperience *string    `gorm:"column:prior_odr_experience"`
	OwnerID            string     `gorm:"column:owner_id;type:uuid;index;not null"`
	SubmissionID       *string    `gorm:"column:submission_id;type:uuid;index"`
	Approved           bool       `gorm:"column:approved;default:false"`
	ReviewedBy         *string    `gorm:"column:reviewed_by;type:uuid"`
	ReviewedAt         *time.Time `gorm:"column:reviewed_at"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Owner         User               `gorm:"foreignKey:OwnerID"`
	Comments      []Comment          `gorm:"foreignKey:IdeaID"`
	Likes         []Like             `gorm:"foreignKey:IdeaID"`
	Collaborators []IdeaCollaborator `gorm:"foreignKey:IdeaID"`
	Mentors       []IdeaMentor       `gorm:"foreignKey:IdeaID"`
	Meetings      []MeetingLog       `gorm:"foreignKey:IdeaID"`
}

func (Idea) TableName() string {
	return "ideas"
}

func (i *Idea) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
