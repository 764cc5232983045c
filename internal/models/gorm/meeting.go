package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"odr-lab/platform/internal/constants"
)

// MeetingLog records a video session tied to an idea. The room name is what
// the JaaS join token is signed over.
type MeetingLog struct {
	ID            string                  `gorm:"column:id;primaryKey;type:uuid"`
	IdeaID        string                  `gorm:"column:idea_id;type:uuid;index;not null"`
	CreatedBy     string                  `gorm:"column:created_by;type:uuid;not null"`
	Title         *string                 `gorm:"column:title"`
	JitsiRoomName string                  `gorm:"column:jitsi_room_name;not null"`
	Status        constants.MeetingStatus `gorm:"column:status;default:SCHEDULED"`
	ScheduledAt   *time.Time              `gorm:"column:scheduled_at"`
	StartedAt     *time.Time              `gorm:"column:started_at"`
	EndedAt       *time.Time              `gorm:"column:ended_at"`
	CreatedAt     time.Time               `gorm:"column:created_at;autoCreateTime"`

	Idea    Idea `gorm:"foreignKey:IdeaID"`
	Creator User `gorm:"foreignKey:CreatedBy"`
}

func (MeetingLog) TableName() string {
	return "meeting_logs"
}

func (m *MeetingLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
