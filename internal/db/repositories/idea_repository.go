package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "odr-lab/platform/internal/models/gorm"
)

type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

func (r *IdeaRepository) Create(ctx context.Context, idea *gormModels.Idea) error {
	if err := r.db.WithContext(ctx).Create(idea).Error; err != nil {
		return fmt.Errorf("failed to create idea: %w", err)
	}
	return nil
}

func (r *IdeaRepository) GetByID(ctx context.Context, id string) (*gormModels.Idea, error) {
	var idea gormModels.Idea

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&idea).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch idea: %w", err)
	}

	return &idea, nil
}

// GetApprovedByID is the public read path: unapproved ideas are invisible
// here, indistinguishable from absent ones.
func (r *IdeaRepository) GetApprovedByID(ctx context.Context, id string) (*gormModels.Idea, error) {
	var idea gormModels.Idea

	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ? AND approved = ?", id, true).
		First(&idea).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch idea: %w", err)
	}

	return &idea, nil
}

func (r *IdeaRepository) ListApproved(ctx context.Context) ([]gormModels.Idea, error) {
	var ideas []gormModels.Idea

	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Likes").
		Preload("Comments").
		Where("approved = ?", true).
		Order("created_at DESC").
		Find(&ideas).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved ideas: %w", err)
	}

	return ideas, nil
}

// ListAll is the admin view, pending and published alike.
func (r *IdeaRepository) ListAll(ctx context.Context) ([]gormModels.Idea, error) {
	var ideas []gormModels.Idea

	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Likes").
		Preload("Comments").
		Order("created_at DESC").
		Find(&ideas).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch ideas: %w", err)
	}

	return ideas, nil
}

func (r *IdeaRepository) Save(ctx context.Context, idea *gormModels.Idea) error {
	if err := r.db.WithContext(ctx).Save(idea).Error; err != nil {
		return fmt.Errorf("failed to update idea: %w", err)
	}
	return nil
}

// MarkApproved is the legacy direct-approval path for ideas that were
// admin-created without a submission. The approved=false guard keeps the
// transition one-shot.
func (r *IdeaRepository) MarkApproved(ctx context.Context, ideaID, reviewerID string) (bool, error) {
	now := time.Now()

	res := r.db.WithContext(ctx).
		Model(&gormModels.Idea{}).
		Where("id = ? AND approved = ?", ideaID, false).
		Updates(map[string]interface{}{
			"approved":    true,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
		})

	if res.Error != nil {
		return false, fmt.Errorf("failed to approve idea: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes an idea and all dependent rows in one transaction. Comment
// likes go before comments, comments before the idea.
func (r *IdeaRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN (?)",
			tx.Model(&gormModels.Comment{}).Select("id").Where("idea_id = ?", id),
		).Delete(&gormModels.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&gormModels.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&gormModels.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&gormModels.IdeaCollaborator{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&gormModels.IdeaMentor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&gormModels.MeetingLog{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&gormModels.Idea{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	return nil
}
