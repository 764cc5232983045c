package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"odr-lab/platform/internal/constants"
)

type User struct {
	ID               string             `gorm:"column:id;primaryKey;type:uuid"`
	Name             string             `gorm:"column:name;not null"`
	Email            string             `gorm:"column:email;uniqueIndex;not null"`
	Password         string             `gorm:"column:password;not null"`
	UserRole         constants.UserRole `gorm:"column:user_role;default:INNOVATOR"`
	ContactNumber    *string            `gorm:"column:contact_number"`
	City             *string            `gorm:"column:city"`
	Country          *string            `gorm:"column:country"`
	Institution      *string            `gorm:"column:institution"`
	HighestEducation *string            `gorm:"column:highest_education"`
	OdrLabUsage      *string            `gorm:"column:odr_lab_usage"`
	CreatedAt        time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time          `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Ideas    []Idea    `gorm:"foreignKey:OwnerID"`
	Comments []Comment `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// IDs are assigned in the application so the same models work against
// Postgres and the SQLite test databases.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
