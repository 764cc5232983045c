package services

import (
	"context"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/logging"
	gormModels "odr-lab/platform/internal/models/gorm"
	"odr-lab/platform/internal/models/dtos/responses"
)

// CollaborationService covers joining and leaving ideas as a collaborator
// or mentor. Owners can be neither on their own idea; mentorship is gated on
// the MENTOR role of the hydrated caller.
type CollaborationService struct {
	ideas   *repositories.IdeaRepository
	collabs *repositories.CollaborationRepository
}

func NewCollaborationService(ideas *repositories.IdeaRepository, collabs *repositories.CollaborationRepository) *CollaborationService {
	return &CollaborationService{ideas: ideas, collabs: collabs}
}

func (s *CollaborationService) JoinCollaborator(ctx context.Context, user *gormModels.User, ideaID string) (*responses.JoinAck, error) {
	existing, err := s.collabs.GetCollaborator(ctx, user.ID, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to join as collaborator", err)
	}
	if existing != nil {
		return nil, common.ErrConflict(constants.MsgAlreadyCollaborator)
	}

	idea, err := s.ideas.GetApprovedByID(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to join as collaborator", err)
	}
	if idea == nil {
		return nil, common.ErrNotFound(constants.MsgIdeaNotFound)
	}
	if idea.OwnerID == user.ID {
		return nil, common.ErrValidation(constants.MsgOwnIdeaJoin)
	}

	collab := &gormModels.IdeaCollaborator{UserID: user.ID, IdeaID: ideaID}
	if err := s.collabs.CreateCollaborator(ctx, collab); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, common.ErrConflict(constants.MsgAlreadyCollaborator)
		}
		return nil, common.ErrInternal("Failed to join as collaborator", err)
	}

	logging.Info("Collaborator joined", "idea_id", ideaID, "user_id", user.ID)

	return &responses.JoinAck{
		Message: "Successfully joined as collaborator",
		Collaborator: &responses.Collaborator{
			ID:       collab.ID,
			UserID:   collab.UserID,
			IdeaID:   collab.IdeaID,
			JoinedAt: collab.JoinedAt,
			User:     toUserSummary(user),
		},
	}, nil
}

func (s *CollaborationService) LeaveCollaborator(ctx context.Context, userID, ideaID string) error {
	removed, err := s.collabs.DeleteCollaborator(ctx, userID, ideaID)
	if err != nil {
		return common.ErrInternal("Failed to leave collaboration", err)
	}
	if !removed {
		return common.ErrNotFound(constants.MsgNotCollaborator)
	}
	return nil
}

func (s *CollaborationService) RequestMentor(ctx context.Context, user *gormModels.User, ideaID string) (*responses.JoinAck, error) {
	if user.UserRole != constants.RoleMentor {
		return nil, common.ErrForbidden(constants.MsgMentorRoleRequired)
	}

	existing, err := s.collabs.GetMentor(ctx, user.ID, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to join as mentor", err)
	}
	if existing != nil {
		return nil, common.ErrConflict(constants.MsgAlreadyMentor)
	}

	idea, err := s.ideas.GetApprovedByID(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to join as mentor", err)
	}
	if idea == nil {
		return nil, common.ErrNotFound(constants.MsgIdeaNotFound)
	}
	if idea.OwnerID == user.ID {
		return nil, common.ErrValidation(constants.MsgOwnIdeaJoin)
	}

	mentor := &gormModels.IdeaMentor{UserID: user.ID, IdeaID: ideaID}
	if err := s.collabs.CreateMentor(ctx, mentor); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, common.ErrConflict(constants.MsgAlreadyMentor)
		}
		return nil, common.ErrInternal("Failed to join as mentor", err)
	}

	logging.Info("Mentor joined", "idea_id", ideaID, "user_id", user.ID)

	return &responses.JoinAck{
		Message: "Successfully joined as mentor",
		Mentor: &responses.Collaborator{
			ID:       mentor.ID,
			UserID:   mentor.UserID,
			IdeaID:   mentor.IdeaID,
			JoinedAt: mentor.JoinedAt,
			User:     toUserSummary(user),
		},
	}, nil
}

func (s *CollaborationService) LeaveMentor(ctx context.Context, userID, ideaID string) error {
	removed, err := s.collabs.DeleteMentor(ctx, userID, ideaID)
	if err != nil {
		return common.ErrInternal("Failed to leave mentorship", err)
	}
	if !removed {
		return common.ErrNotFound(constants.MsgNotMentor)
	}
	return nil
}

func (s *CollaborationService) ListCollaborators(ctx context.Context, ideaID string) ([]responses.Collaborator, error) {
	collabs, err := s.collabs.ListCollaborators(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch collaborators", err)
	}

	result := make([]responses.Collaborator, 0, len(collabs))
	for i := range collabs {
		c := &collabs[i]
		result = append(result, responses.Collaborator{
			ID:       c.ID,
			UserID:   c.UserID,
			IdeaID:   c.IdeaID,
			JoinedAt: c.JoinedAt,
			User:     toUserSummary(&c.User),
		})
	}
	return result, nil
}

func (s *CollaborationService) ListMentors(ctx context.Context, ideaID string) ([]responses.Collaborator, error) {
	mentors, err := s.collabs.ListMentors(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch mentors", err)
	}

	result := make([]responses.Collaborator, 0, len(mentors))
	for i := range mentors {
		m := &mentors[i]
		result = append(result, responses.Collaborator{
			ID:       m.ID,
			UserID:   m.UserID,
			IdeaID:   m.IdeaID,
			JoinedAt: m.JoinedAt,
			User:     toUserSummary(&m.User),
		})
	}
	return result, nil
}
