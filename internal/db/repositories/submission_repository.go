package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "odr-lab/platform/internal/models/gorm"
)

// SubmissionRepository owns the idea_submissions table and the
// approval transaction that publishes a submission as an idea.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *gormModels.IdeaSubmission) error {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*gormModels.IdeaSubmission, error) {
	var submission gormModels.IdeaSubmission

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&submission).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}

	return &submission, nil
}

// GetByOwnerAndTitle looks for the submission an idea was published from.
// Fallback for idea rows that predate the submission_id column.
func (r *SubmissionRepository) GetByOwnerAndTitle(ctx context.Context, ownerID, title string) (*gormModels.IdeaSubmission, error) {
	var submission gormModels.IdeaSubmission

	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND title = ?", ownerID, title).
		Order("created_at DESC").
		First(&submission).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}

	return &submission, nil
}

func (r *SubmissionRepository) ListPending(ctx context.Context) ([]gormModels.IdeaSubmission, error) {
	var submissions []gormModels.IdeaSubmission

	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("reviewed = ?", false).
		Order("created_at DESC").
		Find(&submissions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending submissions: %w", err)
	}

	return submissions, nil
}

// ApproveAndPublish atomically publishes a pending submission: it creates
// the Idea copy and stamps the submission reviewed. The reviewed=false guard
// on the update makes the transaction lose cleanly when two admins race;
// ErrAlreadyReviewed is returned for the loser.
var ErrAlreadyReviewed = fmt.Errorf("submission already reviewed")

func (r *SubmissionRepository) ApproveAndPublish(ctx context.Context, submissionID, reviewerID string) (*gormModels.Idea, error) {
	var idea *gormModels.Idea

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var submission gormModels.IdeaSubmission
		if err := tx.Where("id = ?", submissionID).First(&submission).Error; err != nil {
			return err
		}

		now := time.Now()
		res := tx.Model(&gormModels.IdeaSubmission{}).
			Where("id = ? AND reviewed = ?", submissionID, false).
			Updates(map[string]interface{}{
				"reviewed":    true,
				"approved":    true,
				"reviewed_by": reviewerID,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyReviewed
		}

		idea = &gormModels.Idea{
			SubmissionID:       &submission.ID,
			Title:              submission.Title,
			Caption:            submission.Caption,
			Description:        submission.Description,
			PriorOdrExperience: submission.PriorOdrExperience,
			OwnerID:            submission.OwnerID,
			Approved:           true,
			ReviewedBy:         &reviewerID,
			ReviewedAt:         &now,
		}
		return tx.Create(idea).Error
	})

	if err != nil {
		return nil, err
	}
	return idea, nil
}

// MarkApproved stamps a pending submission reviewed+approved without
// creating an Idea, for the legacy path where the idea row already exists.
func (r *SubmissionRepository) MarkApproved(ctx context.Context, submissionID, reviewerID string) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.IdeaSubmission{}).
		Where("id = ? AND reviewed = ?", submissionID, false).
		Updates(map[string]interface{}{
			"reviewed":    true,
			"approved":    true,
			"reviewed_by": reviewerID,
			"reviewed_at": time.Now(),
		})

	if res.Error != nil {
		return fmt.Errorf("failed to mark submission approved: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyReviewed
	}
	return nil
}

// Reject stamps a pending submission rejected. Same reviewed=false guard as
// approval; an already-reviewed submission returns ErrAlreadyReviewed.
func (r *SubmissionRepository) Reject(ctx context.Context, submissionID, reviewerID string, reason *string) error {
	now := time.Now()

	res := r.db.WithContext(ctx).
		Model(&gormModels.IdeaSubmission{}).
		Where("id = ? AND reviewed = ?", submissionID, false).
		Updates(map[string]interface{}{
			"reviewed":         true,
			"approved":         false,
			"rejected":         true,
			"rejection_reason": reason,
			"reviewed_by":      reviewerID,
			"reviewed_at":      now,
		})

	if res.Error != nil {
		return fmt.Errorf("failed to reject submission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyReviewed
	}
	return nil
}
