package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "odr-lab/platform/internal/models/gorm"
)

// CollaborationRepository covers both join tables: collaborators and
// mentors. The two are structurally identical; only the role gate differs,
// and that lives in the service.
type CollaborationRepository struct {
	db *gorm.DB
}

func NewCollaborationRepository(db *gorm.DB) *CollaborationRepository {
	return &CollaborationRepository{db: db}
}

func (r *CollaborationRepository) GetCollaborator(ctx context.Context, userID, ideaID string) (*gormModels.IdeaCollaborator, error) {
	var collab gormModels.IdeaCollaborator

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		First(&collab).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch collaborator: %w", err)
	}

	return &collab, nil
}

func (r *CollaborationRepository) CreateCollaborator(ctx context.Context, collab *gormModels.IdeaCollaborator) error {
	if err := r.db.WithContext(ctx).Create(collab).Error; err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to create collaborator: %w", err)
	}
	return nil
}

// DeleteCollaborator reports whether a row was actually removed, so the
// service can tell "left" apart from "was never a collaborator".
func (r *CollaborationRepository) DeleteCollaborator(ctx context.Context, userID, ideaID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		Delete(&gormModels.IdeaCollaborator{})

	if res.Error != nil {
		return false, fmt.Errorf("failed to delete collaborator: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *CollaborationRepository) ListCollaborators(ctx context.Context, ideaID string) ([]gormModels.IdeaCollaborator, error) {
	var collabs []gormModels.IdeaCollaborator

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("idea_id = ?", ideaID).
		Order("joined_at ASC").
		Find(&collabs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch collaborators: %w", err)
	}

	return collabs, nil
}

func (r *CollaborationRepository) GetMentor(ctx context.Context, userID, ideaID string) (*gormModels.IdeaMentor, error) {
	var mentor gormModels.IdeaMentor

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		First(&mentor).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mentor: %w", err)
	}

	return &mentor, nil
}

func (r *CollaborationRepository) CreateMentor(ctx context.Context, mentor *gormModels.IdeaMentor) error {
	if err := r.db.WithContext(ctx).Create(mentor).Error; err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to create mentor: %w", err)
	}
	return nil
}

func (r *CollaborationRepository) DeleteMentor(ctx context.Context, userID, ideaID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		Delete(&gormModels.IdeaMentor{})

	if res.Error != nil {
		return false, fmt.Errorf("failed to delete mentor: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *CollaborationRepository) ListMentors(ctx context.Context, ideaID string) ([]gormModels.IdeaMentor, error) {
	var mentors []gormModels.IdeaMentor

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("idea_id = ?", ideaID).
		Order("joined_at ASC").
		Find(&mentors).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentors: %w", err)
	}

	return mentors, nil
}
