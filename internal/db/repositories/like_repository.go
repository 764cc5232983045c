package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "odr-lab/platform/internal/models/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) GetForIdea(ctx context.Context, userID, ideaID string) (*gormModels.Like, error) {
	var like gormModels.Like

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		First(&like).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch like: %w", err)
	}

	return &like, nil
}

func (r *LikeRepository) GetForComment(ctx context.Context, userID, commentID string) (*gormModels.Like, error) {
	var like gormModels.Like

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&like).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch like: %w", err)
	}

	return &like, nil
}

// Create inserts the like row. Uniqueness violations pass through untouched
// so the service can report the toggle race as a conflict.
func (r *LikeRepository) Create(ctx context.Context, like *gormModels.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.Like{}).Error; err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (r *LikeRepository) CountForIdea(ctx context.Context, ideaID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Like{}).
		Where("idea_id = ?", ideaID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

// LikedCommentIDs returns the ids of comments on the idea that the user has
// liked, for UI hydration of the discussion page.
func (r *LikeRepository) LikedCommentIDs(ctx context.Context, userID, ideaID string) ([]string, error) {
	var ids []string

	err := r.db.WithContext(ctx).
		Model(&gormModels.Like{}).
		Joins("JOIN comments ON comments.id = likes.comment_id").
		Where("likes.user_id = ? AND comments.idea_id = ?", userID, ideaID).
		Pluck("likes.comment_id", &ids).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch liked comments: %w", err)
	}

	return ids, nil
}
