package db

import (
	"gorm.io/gorm"

	gormModels "odr-lab/platform/internal/models/gorm"
)

// AutoMigrate creates or updates the schema for every platform entity.
// Order matters: referenced tables first.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gormModels.User{},
		&gormModels.IdeaSubmission{},
		&gormModels.Idea{},
		&gormModels.Comment{},
		&gormModels.Like{},
		&gormModels.IdeaCollaborator{},
		&gormModels.IdeaMentor{},
		&gormModels.MeetingLog{},
	)
}
