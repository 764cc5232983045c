package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"odr-lab/platform/internal/constants"
	gormModels "odr-lab/platform/internal/models/gorm"
)

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(ctx context.Context, meeting *gormModels.MeetingLog) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

func (r *MeetingRepository) GetByID(ctx context.Context, id string) (*gormModels.MeetingLog, error) {
	var meeting gormModels.MeetingLog

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch meeting: %w", err)
	}

	return &meeting, nil
}

func (r *MeetingRepository) ListByIdea(ctx context.Context, ideaID string) ([]gormModels.MeetingLog, error) {
	var meetings []gormModels.MeetingLog

	err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at DESC").
		Find(&meetings).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch meetings: %w", err)
	}

	return meetings, nil
}

// SetStatus transitions a meeting from its expected predecessor and stamps
// the matching timestamp. The status guard on the update keeps concurrent
// transitions from rewriting an already-advanced meeting.
func (r *MeetingRepository) SetStatus(ctx context.Context, id string, from, status constants.MeetingStatus) (bool, error) {
	now := time.Now()

	updates := map[string]interface{}{"status": status}
	switch status {
	case constants.MeetingActive:
		updates["started_at"] = now
	case constants.MeetingEnded:
		updates["ended_at"] = now
	}

	res := r.db.WithContext(ctx).
		Model(&gormModels.MeetingLog{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)

	if res.Error != nil {
		return false, fmt.Errorf("failed to update meeting status: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
