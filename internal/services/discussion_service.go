package services

import (
	"context"
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

// DiscussionService covers comments and likes on published ideas.
type DiscussionService struct {
	ideas      *repositories.IdeaRepository
	comments   *repositories.CommentRepository
	likes      *repositories.LikeRepository
	metricsReg *metrics.MetricsRegistry
}

func NewDiscussionService(
	ideas *repositories.IdeaRepository,
	comments *repositories.CommentRepository,
	likes *repositories.LikeRepository,
	metricsReg *metrics.MetricsRegistry,
) *DiscussionService {
	return &DiscussionService{
		ideas:      ideas,
		comments:   comments,
		likes:      likes,
		metricsReg: metricsReg,
	}
}

// ListComments returns the reply tree for an approved idea, oldest first at
// every level.
func (s *DiscussionService) ListComments(ctx context.Context, ideaID string) ([]responses.CommentNode, error) {
	idea, err := s.ideas.GetApprovedByID(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch comments", err)
	}
	if idea == nil {
		return nil, common.ErrNotFound(constants.MsgIdeaNotFound)
	}

	comments, err := s.comments.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch comments", err)
	}

	return buildCommentTree(comments), nil
}

// PostComment adds a comment, optionally as a reply. The parent must be a
// comment on the same idea.
func (s *DiscussionService) PostComment(ctx context.Context, user *gormModels.User, ideaID string, req requests.PostCommentRequest) (*responses.CommentNode, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, common.ErrValidation("Content required")
	}

	idea, err := s.ideas.GetApprovedByID(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to post comment", err)
	}
	if idea == nil {
		return nil, common.ErrNotFound(constants.MsgIdeaNotFound)
	}

	if req.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, common.ErrInternal("Failed to post comment", err)
		}
		if parent == nil || parent.IdeaID != ideaID {
			return nil, common.ErrValidation("Parent comment does not belong to this idea")
		}
	}

	comment := &gormModels.Comment{
		Content:  strings.TrimSpace(req.Content),
		IdeaID:   ideaID,
		UserID:   user.ID,
		ParentID: req.ParentID,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, common.ErrInternal("Failed to post comment", err)
	}

	s.metricsReg.CommentsPostedTotal.Inc()
	logging.Info("Comment posted", "comment_id", comment.ID, "idea_id", ideaID, "user_id", user.ID)

	return &responses.CommentNode{
		ID:        comment.ID,
		Content:   comment.Content,
		ParentID:  comment.ParentID,
		CreatedAt: comment.CreatedAt,
		Author:    toUserSummary(user),
		Likes:     0,
		Replies:   []responses.CommentNode{},
	}, nil
}

// ToggleIdeaLike flips the caller's like on an idea. A concurrent duplicate
// insert is reported as a conflict; the store's unique index decides the
// winner.
func (s *DiscussionService) ToggleIdeaLike(ctx context.Context, userID, ideaID string) (*responses.LikeToggle, error) {
	idea, err := s.ideas.GetApprovedByID(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to toggle like", err)
	}
	if idea == nil {
		return nil, common.ErrNotFound(constants.MsgIdeaNotFound)
	}

	existing, err := s.likes.GetForIdea(ctx, userID, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to toggle like", err)
	}

	if existing != nil {
		if err := s.likes.Delete(ctx, existing.ID); err != nil {
			return nil, common.ErrInternal("Failed to toggle like", err)
		}
		s.metricsReg.LikeTogglesTotal.WithLabelValues("idea", "unliked").Inc()
		return &responses.LikeToggle{Liked: false}, nil
	}

	like := &gormModels.Like{UserID: userID, IdeaID: &ideaID}
	if err := s.likes.Create(ctx, like); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, common.ErrConflict("Already liked")
		}
		return nil, common.ErrInternal("Failed to toggle like", err)
	}

	s.metricsReg.LikeTogglesTotal.WithLabelValues("idea", "liked").Inc()
	return &responses.LikeToggle{Liked: true}, nil
}

// ToggleCommentLike is the comment-scoped twin of ToggleIdeaLike.
func (s *DiscussionService) ToggleCommentLike(ctx context.Context, userID, commentID string) (*responses.LikeToggle, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, common.ErrInternal("Failed to toggle like", err)
	}
	if comment == nil {
		return nil, common.ErrNotFound(constants.MsgCommentNotFound)
	}

	existing, err := s.likes.GetForComment(ctx, userID, commentID)
	if err != nil {
		return nil, common.ErrInternal("Failed to toggle like", err)
	}

	if existing != nil {
		if err := s.likes.Delete(ctx, existing.ID); err != nil {
			return nil, common.ErrInternal("Failed to toggle like", err)
		}
		s.metricsReg.LikeTogglesTotal.WithLabelValues("comment", "unliked").Inc()
		return &responses.LikeToggle{Liked: false}, nil
	}

	like := &gormModels.Like{UserID: userID, CommentID: &commentID}
	if err := s.likes.Create(ctx, like); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, common.ErrConflict("Already liked")
		}
		return nil, common.ErrInternal("Failed to toggle like", err)
	}

	s.metricsReg.LikeTogglesTotal.WithLabelValues("comment", "liked").Inc()
	return &responses.LikeToggle{Liked: true}, nil
}

// CheckIdeaLike is the read-only hydration call behind the like button.
func (s *DiscussionService) CheckIdeaLike(ctx context.Context, userID, ideaID string) (*responses.LikeCheck, error) {
	like, err := s.likes.GetForIdea(ctx, userID, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to check like", err)
	}
	return &responses.LikeCheck{HasLiked: like != nil}, nil
}

// LikedComments returns the ids of comments on the idea the caller liked.
func (s *DiscussionService) LikedComments(ctx context.Context, userID, ideaID string) (*responses.LikedComments, error) {
	ids, err := s.likes.LikedCommentIDs(ctx, userID, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch liked comments", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return &responses.LikedComments{LikedCommentIDs: ids}, nil
}

// buildCommentTree materializes the reply tree from one flat, time-ordered
// slice: index children by parent id, then attach subtrees depth-first.
// One pass over the rows, no per-node queries.
func buildCommentTree(comments []gormModels.Comment) []responses.CommentNode {
	children := make(map[string][]*gormModels.Comment)
	var roots []*gormModels.Comment

	for i := range comments {
		c := &comments[i]
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	var materialize func(c *gormModels.Comment) responses.CommentNode
	materialize = func(c *gormModels.Comment) responses.CommentNode {
		node := responses.CommentNode{
			ID:        c.ID,
			Content:   c.Content,
			ParentID:  c.ParentID,
			CreatedAt: c.CreatedAt,
			Author:    toUserSummary(&c.User),
			Likes:     int64(len(c.Likes)),
			Replies:   []responses.CommentNode{},
		}
		for _, child := range children[c.ID] {
			node.Replies = append(node.Replies, materialize(child))
		}
		return node
	}

	tree := make([]responses.CommentNode, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, materialize(root))
	}
	return tree
}
