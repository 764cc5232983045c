package services

import (
	"context"
	"errors"
	"strings"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/logging"
	"odr-lab/platform/internal/metrics"
	gormModels "odr-lab/platform/internal/models/gorm"
	"odr-lab/platform/internal/models/dtos/requests"
	"odr-lab/platform/internal/models/dtos/responses"
)

// SubmissionService owns the submission -> moderation -> publication state
// machine. A submission is PENDING until an admin approves or rejects it;
// both outcomes are terminal.
type SubmissionService struct {
	submissions *repositories.SubmissionRepository
	ideas       *repositories.IdeaRepository
	cache       common.CacheInterface
	metricsReg  *metrics.MetricsRegistry
}

func NewSubmissionService(
	submissions *repositories.SubmissionRepository,
	ideas *repositories.IdeaRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *SubmissionService {
	return &SubmissionService{
		submissions: submissions,
		ideas:       ideas,
		cache:       cache,
		metricsReg:  metricsReg,
	}
}

func (s *SubmissionService) SubmitIdea(ctx context.Context, ownerID string, req requests.SubmitIdeaRequest) (*responses.SubmissionAck, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, common.ErrValidation("Title and description are required")
	}
	if !req.Consent {
		return nil, common.ErrValidation("Consent is required to submit an idea")
	}

	submission := &gormModels.IdeaSubmission{
		Title:              strings.TrimSpace(req.Title),
		Caption:            req.IdeaCaption,
		Description:        strings.TrimSpace(req.Description),
		PriorOdrExperience: req.OdrExperience,
		OwnerID:            ownerID,
	}

	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, common.ErrInternal("Failed to submit idea. Please try again later.", err)
	}

	s.metricsReg.IdeasSubmittedTotal.Inc()
	logging.Info("Idea submitted", "submission_id", submission.ID, "owner_id", ownerID)

	return &responses.SubmissionAck{
		SubmissionID: submission.ID,
		Message:      "Idea submitted successfully and awaiting approval",
	}, nil
}

func (s *SubmissionService) ListPending(ctx context.Context) ([]responses.PendingSubmission, error) {
	submissions, err := s.submissions.ListPending(ctx)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch pending submissions", err)
	}

	result := make([]responses.PendingSubmission, 0, len(submissions))
	for i := range submissions {
		sub := &submissions[i]
		pending := responses.PendingSubmission{
			ID:          sub.ID,
			Title:       sub.Title,
			Description: sub.Description,
			CreatedAt:   sub.CreatedAt,
			Owner:       toUserSummary(&sub.Owner),
		}
		if sub.Caption != nil {
			pending.IdeaCaption = *sub.Caption
		}
		if sub.PriorOdrExperience != nil {
			pending.OdrExperience = *sub.PriorOdrExperience
		}
		result = append(result, pending)
	}

	return result, nil
}

// Approve publishes a pending submission as an Idea. The two writes happen
// in one store transaction; a second approval of the same submission loses
// on the reviewed=false guard and surfaces as a conflict.
func (s *SubmissionService) Approve(ctx context.Context, adminID, submissionID string) (*responses.IdeaSummary, error) {
	submission, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return nil, common.ErrInternal("Failed to approve idea", err)
	}
	if submission == nil {
		return nil, common.ErrNotFound(constants.MsgSubmissionNotFound)
	}
	if submission.Reviewed {
		return nil, common.ErrConflict(constants.MsgAlreadyReviewed)
	}

	idea, err := s.submissions.ApproveAndPublish(ctx, submissionID, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyReviewed) {
			return nil, common.ErrConflict(constants.MsgAlreadyReviewed)
		}
		return nil, common.ErrInternal("Failed to approve idea", err)
	}

	s.invalidateApprovedListing()
	s.metricsReg.ModerationDecisionsTotal.WithLabelValues("approved").Inc()
	logging.Info("Submission approved",
		"submission_id", submissionID,
		"idea_id", idea.ID,
		"reviewed_by", adminID,
	)

	published, err := s.ideas.GetApprovedByID(ctx, idea.ID)
	if err != nil || published == nil {
		// publication already committed; return what we have
		summary := responses.IdeaSummary{
			ID:          idea.ID,
			Title:       idea.Title,
			Description: idea.Description,
			SubmittedAt: idea.CreatedAt,
		}
		return &summary, nil
	}

	summary := toIdeaSummary(published)
	return &summary, nil
}

func (s *SubmissionService) Reject(ctx context.Context, adminID, submissionID string, reason *string) error {
	submission, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return common.ErrInternal("Failed to reject idea", err)
	}
	if submission == nil {
		return common.ErrNotFound(constants.MsgSubmissionNotFound)
	}
	if submission.Reviewed {
		return common.ErrConflict(constants.MsgAlreadyReviewed)
	}

	if err := s.submissions.Reject(ctx, submissionID, adminID, reason); err != nil {
		if errors.Is(err, repositories.ErrAlreadyReviewed) {
			return common.ErrConflict(constants.MsgAlreadyReviewed)
		}
		return common.ErrInternal("Failed to reject idea", err)
	}

	s.metricsReg.ModerationDecisionsTotal.WithLabelValues("rejected").Inc()
	logging.Info("Submission rejected", "submission_id", submissionID, "reviewed_by", adminID)
	return nil
}

// ApproveIdeaDirect is the deprecated direct-idea-approval alias. It drives
// the same one-shot transition: the idea's approved=false guard makes a
// repeat call a conflict, and any still-pending submission the idea came
// from is stamped reviewed so the audit trail stays consistent.
func (s *SubmissionService) ApproveIdeaDirect(ctx context.Context, adminID, ideaID string) error {
	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return common.ErrInternal("Failed to approve idea", err)
	}
	if idea == nil {
		return common.ErrNotFound("Idea not found")
	}
	if idea.Approved {
		return common.ErrConflict(constants.MsgAlreadyReviewed)
	}

	flipped, err := s.ideas.MarkApproved(ctx, ideaID, adminID)
	if err != nil {
		return common.ErrInternal("Failed to approve idea", err)
	}
	if !flipped {
		return common.ErrConflict(constants.MsgAlreadyReviewed)
	}

	// close out the originating submission if one is still pending. Ideas
	// published through the moderation queue carry the exact submission id;
	// older rows fall back to the owner+title heuristic.
	var submission *gormModels.IdeaSubmission
	if idea.SubmissionID != nil {
		submission, err = s.submissions.GetByID(ctx, *idea.SubmissionID)
	} else {
		submission, err = s.submissions.GetByOwnerAndTitle(ctx, idea.OwnerID, idea.Title)
	}
	if err == nil && submission != nil && !submission.Reviewed {
		if err := s.submissions.MarkApproved(ctx, submission.ID, adminID); err != nil {
			logging.Warn("Direct approval could not close originating submission",
				"idea_id", ideaID, "submission_id", submission.ID, "error", err.Error())
		}
	}

	s.invalidateApprovedListing()
	s.metricsReg.ModerationDecisionsTotal.WithLabelValues("approved").Inc()
	return nil
}

func (s *SubmissionService) invalidateApprovedListing() {
	s.cache.Delete(string(constants.CachePrefixApprovedIdeas))
}
