package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "odr-lab/platform/internal/models/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *gormModels.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*gormModels.Comment, error) {
	var comment gormModels.Comment

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&comment).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}

	return &comment, nil
}

// ListByIdea returns every comment on the idea in one query, oldest first,
// with author and likes preloaded. The reply tree is assembled by the
// discussion service from this flat slice.
func (r *CommentRepository) ListByIdea(ctx context.Context, ideaID string) ([]gormModels.Comment, error) {
	var comments []gormModels.Comment

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Where("idea_id = ?", ideaID).
		Order("created_at ASC").
		Find(&comments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	return comments, nil
}
