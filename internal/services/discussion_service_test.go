package services

import (
	"context"
	"errors"
	"testing"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	gormModels "odr-lab/platform/internal/models/gorm"
	"odr-lab/platform/internal/models/dtos/requests"
)

func TestDiscussionService_LikeToggleIsIdempotentPair(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, _, _ := newTestRepos(gdb)
	svc := NewDiscussionService(ideas, comments, likes, testMetrics)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	liker := createTestUser(t, gdb, "Liker", "liker@example.com", constants.RoleInnovator)
	idea := createApprovedIdea(t, gdb, owner, "Likeable")

	ctx := context.Background()

	toggle, err := svc.ToggleIdeaLike(ctx, liker.ID, idea.ID)
	if err != nil {
		t.Fatalf("First toggle: %v", err)
	}
	if !toggle.Liked {
		t.Error("First toggle should like")
	}

	check, err := svc.CheckIdeaLike(ctx, liker.ID, idea.ID)
	if err != nil {
		t.Fatalf("CheckIdeaLike: %v", err)
	}
	if !check.HasLiked {
		t.Error("Check after like should report liked")
	}

	toggle, err = svc.ToggleIdeaLike(ctx, liker.ID, idea.ID)
	if err != nil {
		t.Fatalf("Second toggle: %v", err)
	}
	if toggle.Liked {
		t.Error("Second toggle should unlike")
	}

	var count int64
	gdb.Model(&gormModels.Like{}).Where("idea_id = ?", idea.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected 0 likes after toggle pair, got %d", count)
	}
}

func TestDiscussionService_LikeUnapprovedIdeaNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, _, _ := newTestRepos(gdb)
	svc := NewDiscussionService(ideas, comments, likes, testMetrics)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	idea := &gormModels.Idea{Title: "Hidden", Description: "D", OwnerID: owner.ID, Approved: false}
	if err := gdb.Create(idea).Error; err != nil {
		t.Fatalf("Creating idea: %v", err)
	}

	_, err := svc.ToggleIdeaLike(context.Background(), owner.ID, idea.ID)
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 404 {
		t.Fatalf("Liking an unapproved idea should 404, got %v", err)
	}
}

func TestDiscussionService_ReplyNestingRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, _, _ := newTestRepos(gdb)
	svc := NewDiscussionService(ideas, comments, likes, testMetrics)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	alice := createTestUser(t, gdb, "Alice", "alice@example.com", constants.RoleInnovator)
	bob := createTestUser(t, gdb, "Bob", "bob@example.com", constants.RoleInnovator)
	idea := createApprovedIdea(t, gdb, owner, "Discussed")

	ctx := context.Background()

	root, err := svc.PostComment(ctx, alice, idea.ID, requests.PostCommentRequest{Content: "first"})
	if err != nil {
		t.Fatalf("Posting root comment: %v", err)
	}
	reply, err := svc.PostComment(ctx, bob, idea.ID, requests.PostCommentRequest{Content: "reply", ParentID: &root.ID})
	if err != nil {
		t.Fatalf("Posting reply: %v", err)
	}
	nested, err := svc.PostComment(ctx, alice, idea.ID, requests.PostCommentRequest{Content: "deeper", ParentID: &reply.ID})
	if err != nil {
		t.Fatalf("Posting nested reply: %v", err)
	}

	tree, err := svc.ListComments(ctx, idea.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}

	if len(tree) != 1 {
		t.Fatalf("Expected 1 root comment, got %d", len(tree))
	}
	if tree[0].ID != root.ID || tree[0].Author.Name != "Alice" {
		t.Errorf("Root mismatch: %s by %s", tree[0].ID, tree[0].Author.Name)
	}
	if len(tree[0].Replies) != 1 || tree[0].Replies[0].ID != reply.ID {
		t.Fatalf("Reply not nested under root")
	}
	if len(tree[0].Replies[0].Replies) != 1 || tree[0].Replies[0].Replies[0].ID != nested.ID {
		t.Fatalf("Second-level reply not nested")
	}
}

func TestDiscussionService_ParentMustBeOnSameIdea(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, _, _ := newTestRepos(gdb)
	svc := NewDiscussionService(ideas, comments, likes, testMetrics)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	ideaA := createApprovedIdea(t, gdb, owner, "A")
	ideaB := createApprovedIdea(t, gdb, owner, "B")

	ctx := context.Background()
	parent, err := svc.PostComment(ctx, owner, ideaA.ID, requests.PostCommentRequest{Content: "on A"})
	if err != nil {
		t.Fatalf("Posting parent: %v", err)
	}

	_, err = svc.PostComment(ctx, owner, ideaB.ID, requests.PostCommentRequest{Content: "cross", ParentID: &parent.ID})
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 400 {
		t.Fatalf("Cross-idea reply should be a 400, got %v", err)
	}
}

func TestDiscussionService_CommentLikeAndHydration(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, _, _ := newTestRepos(gdb)
	svc := NewDiscussionService(ideas, comments, likes, testMetrics)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	liker := createTestUser(t, gdb, "Liker", "liker@example.com", constants.RoleInnovator)
	idea := createApprovedIdea(t, gdb, owner, "C")

	ctx := context.Background()
	comment, err := svc.PostComment(ctx, owner, idea.ID, requests.PostCommentRequest{Content: "like me"})
	if err != nil {
		t.Fatalf("Posting comment: %v", err)
	}

	toggle, err := svc.ToggleCommentLike(ctx, liker.ID, comment.ID)
	if err != nil {
		t.Fatalf("ToggleCommentLike: %v", err)
	}
	if !toggle.Liked {
		t.Error("Toggle should like")
	}

	liked, err := svc.LikedComments(ctx, liker.ID, idea.ID)
	if err != nil {
		t.Fatalf("LikedComments: %v", err)
	}
	if len(liked.LikedCommentIDs) != 1 || liked.LikedCommentIDs[0] != comment.ID {
		t.Errorf("LikedCommentIDs = %v, want [%s]", liked.LikedCommentIDs, comment.ID)
	}

	// like counts come from the rows themselves
	tree, err := svc.ListComments(ctx, idea.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if tree[0].Likes != 1 {
		t.Errorf("Comment likes = %d, want 1", tree[0].Likes)
	}
}
