package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/metrics"
	gormModels "odr-lab/platform/internal/models/gorm"
)

// Prometheus collectors register globally, so the whole test binary shares
// one registry.
var testMetrics = metrics.NewMetricsRegistry()

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return gdb
}

func createTestUser(t *testing.T, gdb *gorm.DB, name, email string, role constants.UserRole) *gormModels.User {
	t.Helper()

	user := &gormModels.User{
		Name:     name,
		Email:    email,
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		UserRole: role,
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func createApprovedIdea(t *testing.T, gdb *gorm.DB, owner *gormModels.User, title string) *gormModels.Idea {
	t.Helper()

	idea := &gormModels.Idea{
		Title:       title,
		Description: "Test description",
		OwnerID:     owner.ID,
		Approved:    true,
	}
	if err := gdb.Create(idea).Error; err != nil {
		t.Fatalf("Failed to create test idea: %v", err)
	}
	return idea
}

func newTestRepos(gdb *gorm.DB) (*repositories.UserRepository, *repositories.SubmissionRepository, *repositories.IdeaRepository, *repositories.CommentRepository, *repositories.LikeRepository, *repositories.CollaborationRepository, *repositories.MeetingRepository) {
	return repositories.NewUserRepository(gdb),
		repositories.NewSubmissionRepository(gdb),
		repositories.NewIdeaRepository(gdb),
		repositories.NewCommentRepository(gdb),
		repositories.NewLikeRepository(gdb),
		repositories.NewCollaborationRepository(gdb),
		repositories.NewMeetingRepository(gdb)
}
