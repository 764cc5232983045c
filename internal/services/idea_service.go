package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/logging"
	gormModels "odr-lab/platform/internal/models/gorm"
	"odr-lab/platform/internal/models/dtos/requests"
	"odr-lab/platform/internal/models/dtos/responses"
)

const approvedListingTTL = 60 * time.Second

// IdeaService covers the published-idea read and edit paths. Only approved
// ideas are reachable through the public reads.
type IdeaService struct {
	ideas    *repositories.IdeaRepository
	comments *repositories.CommentRepository
	likes    *repositories.LikeRepository
	collabs  *repositories.CollaborationRepository
	cache    common.CacheInterface
}

func NewIdeaService(
	ideas *repositories.IdeaRepository,
	comments *repositories.CommentRepository,
	likes *repositories.LikeRepository,
	collabs *repositories.CollaborationRepository,
	cache common.CacheInterface,
) *IdeaService {
	return &IdeaService{
		ideas:    ideas,
		comments: comments,
		likes:    likes,
		collabs:  collabs,
		cache:    cache,
	}
}

// ListApproved returns the community listing, served from cache when fresh.
// Writers that change the listing delete the cache key.
func (s *IdeaService) ListApproved(ctx context.Context) ([]responses.IdeaSummary, error) {
	cacheKey := string(constants.CachePrefixApprovedIdeas)

	if raw, found := s.cache.Get(cacheKey); found {
		var cached []responses.IdeaSummary
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	ideas, err := s.ideas.ListApproved(ctx)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch ideas", err)
	}

	result := make([]responses.IdeaSummary, 0, len(ideas))
	for i := range ideas {
		result = append(result, toIdeaSummary(&ideas[i]))
	}

	if raw, err := json.Marshal(result); err == nil {
		s.cache.Set(cacheKey, raw, approvedListingTTL)
	}

	return result, nil
}

// GetDetail assembles the discussion-board view of one approved idea. The
// four dependent reads fan out concurrently.
func (s *IdeaService) GetDetail(ctx context.Context, ideaID string) (*responses.IdeaDetail, error) {
	idea, err := s.ideas.GetApprovedByID(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch idea details", err)
	}
	if idea == nil {
		return nil, common.ErrNotFound(constants.MsgIdeaNotFound)
	}

	var (
		comments      []gormModels.Comment
		likeCount     int64
		collaborators []gormModels.IdeaCollaborator
		mentors       []gormModels.IdeaMentor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByIdea(gctx, ideaID)
		return err
	})
	g.Go(func() error {
		var err error
		likeCount, err = s.likes.CountForIdea(gctx, ideaID)
		return err
	})
	g.Go(func() error {
		var err error
		collaborators, err = s.collabs.ListCollaborators(gctx, ideaID)
		return err
	})
	g.Go(func() error {
		var err error
		mentors, err = s.collabs.ListMentors(gctx, ideaID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, common.ErrInternal("Failed to fetch idea details", err)
	}

	detail := &responses.IdeaDetail{
		ID:                 idea.ID,
		Title:              idea.Title,
		Caption:            idea.Caption,
		Description:        idea.Description,
		PriorOdrExperience: idea.PriorOdrExperience,
		CreatedAt:          idea.CreatedAt,
		Owner:              toUserSummary(&idea.Owner),
		Likes:              likeCount,
		Comments:           buildCommentTree(comments),
		Collaborators:      make([]responses.Collaborator, 0, len(collaborators)),
		Mentors:            make([]responses.Collaborator, 0, len(mentors)),
	}
	for i := range collaborators {
		c := &collaborators[i]
		detail.Collaborators = append(detail.Collaborators, responses.Collaborator{
			ID:       c.ID,
			UserID:   c.UserID,
			IdeaID:   c.IdeaID,
			JoinedAt: c.JoinedAt,
			User:     toUserSummary(&c.User),
		})
	}
	for i := range mentors {
		m := &mentors[i]
		detail.Mentors = append(detail.Mentors, responses.Collaborator{
			ID:       m.ID,
			UserID:   m.UserID,
			IdeaID:   m.IdeaID,
			JoinedAt: m.JoinedAt,
			User:     toUserSummary(&m.User),
		})
	}

	return detail, nil
}

// CreateDirect is the admin-only path that publishes an idea without a
// submission, e.g. ideas migrated from elsewhere.
func (s *IdeaService) CreateDirect(ctx context.Context, adminID string, req requests.CreateIdeaRequest) (*responses.IdeaSummary, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" || req.OwnerID == "" {
		return nil, common.ErrValidation("Title, description, and ownerId are required")
	}

	now := time.Now()
	idea := &gormModels.Idea{
		Title:              strings.TrimSpace(req.Title),
		Caption:            req.Caption,
		Description:        strings.TrimSpace(req.Description),
		PriorOdrExperience: req.PriorOdrExperience,
		OwnerID:            req.OwnerID,
		Approved:           true,
		ReviewedBy:         &adminID,
		ReviewedAt:         &now,
	}

	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, common.ErrInternal("Failed to create idea", err)
	}

	s.cache.Delete(string(constants.CachePrefixApprovedIdeas))
	logging.Info("Idea created directly", "idea_id", idea.ID, "created_by", adminID)

	published, err := s.ideas.GetApprovedByID(ctx, idea.ID)
	if err != nil || published == nil {
		summary := responses.IdeaSummary{ID: idea.ID, Title: idea.Title, Description: idea.Description, SubmittedAt: idea.CreatedAt}
		return &summary, nil
	}
	summary := toIdeaSummary(published)
	return &summary, nil
}

// Update edits title/caption/description. Owner or admin only.
func (s *IdeaService) Update(ctx context.Context, actor *gormModels.User, ideaID string, req requests.UpdateIdeaRequest) (*responses.IdeaSummary, error) {
	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to update idea", err)
	}
	if idea == nil {
		return nil, common.ErrNotFound("Idea not found")
	}
	if idea.OwnerID != actor.ID && actor.UserRole != constants.RoleAdmin {
		return nil, common.ErrForbidden("Not authorized")
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, common.ErrValidation("Title cannot be empty")
		}
		idea.Title = strings.TrimSpace(*req.Title)
	}
	if req.Caption != nil {
		idea.Caption = req.Caption
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, common.ErrValidation("Description cannot be empty")
		}
		idea.Description = strings.TrimSpace(*req.Description)
	}
	if req.PriorOdrExperience != nil {
		idea.PriorOdrExperience = req.PriorOdrExperience
	}

	if err := s.ideas.Save(ctx, idea); err != nil {
		return nil, common.ErrInternal("Failed to update idea", err)
	}

	s.cache.Delete(string(constants.CachePrefixApprovedIdeas))

	summary := toIdeaSummary(idea)
	return &summary, nil
}

// Delete removes an idea and all dependent rows. Owner or admin only.
func (s *IdeaService) Delete(ctx context.Context, actor *gormModels.User, ideaID string) error {
	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return common.ErrInternal("Failed to delete idea", err)
	}
	if idea == nil {
		return common.ErrNotFound("Idea not found")
	}
	if idea.OwnerID != actor.ID && actor.UserRole != constants.RoleAdmin {
		return common.ErrForbidden("Not authorized")
	}

	if err := s.ideas.Delete(ctx, ideaID); err != nil {
		return common.ErrInternal("Failed to delete idea", err)
	}

	s.cache.Delete(string(constants.CachePrefixApprovedIdeas))
	logging.Info("Idea deleted", "idea_id", ideaID, "deleted_by", actor.ID)
	return nil
}

// ListAll is the admin view including unapproved ideas.
func (s *IdeaService) ListAll(ctx context.Context) ([]responses.IdeaSummary, error) {
	ideas, err := s.ideas.ListAll(ctx)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch ideas", err)
	}

	result := make([]responses.IdeaSummary, 0, len(ideas))
	for i := range ideas {
		result = append(result, toIdeaSummary(&ideas[i]))
	}
	return result, nil
}
