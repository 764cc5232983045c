package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	gormModels "odr-lab/platform/internal/models/gorm"
	"odr-lab/platform/internal/models/dtos/requests"
)

func TestIdeaService_UnapprovedDetailHidden(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, collabs, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()
	svc := NewIdeaService(ideas, comments, likes, collabs, cache)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	idea := &gormModels.Idea{Title: "Hidden", Description: "D", OwnerID: owner.ID, Approved: false}
	if err := gdb.Create(idea).Error; err != nil {
		t.Fatalf("Creating idea: %v", err)
	}

	_, err := svc.GetDetail(context.Background(), idea.ID)
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 404 {
		t.Fatalf("Unapproved idea detail should 404, got %v", err)
	}
	if wfErr.Message != constants.MsgIdeaNotFound {
		t.Errorf("Message = %q", wfErr.Message)
	}
}

func TestIdeaService_DetailAggregates(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, collabs, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()
	ideaSvc := NewIdeaService(ideas, comments, likes, collabs, cache)
	discSvc := NewDiscussionService(ideas, comments, likes, testMetrics)
	collabSvc := NewCollaborationService(ideas, collabs)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	friend := createTestUser(t, gdb, "Friend", "friend@example.com", constants.RoleInnovator)
	idea := createApprovedIdea(t, gdb, owner, "Full detail")

	ctx := context.Background()
	if _, err := discSvc.PostComment(ctx, friend, idea.ID, requests.PostCommentRequest{Content: "nice"}); err != nil {
		t.Fatalf("PostComment: %v", err)
	}
	if _, err := discSvc.ToggleIdeaLike(ctx, friend.ID, idea.ID); err != nil {
		t.Fatalf("ToggleIdeaLike: %v", err)
	}
	if _, err := collabSvc.JoinCollaborator(ctx, friend, idea.ID); err != nil {
		t.Fatalf("JoinCollaborator: %v", err)
	}

	detail, err := ideaSvc.GetDetail(ctx, idea.ID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if detail.Likes != 1 {
		t.Errorf("Likes = %d, want 1", detail.Likes)
	}
	if len(detail.Comments) != 1 || detail.Comments[0].Author.Name != "Friend" {
		t.Errorf("Comments = %+v", detail.Comments)
	}
	if len(detail.Collaborators) != 1 || detail.Collaborators[0].User.Name != "Friend" {
		t.Errorf("Collaborators = %+v", detail.Collaborators)
	}
	if detail.Owner.Name != "Owner" {
		t.Errorf("Owner = %+v", detail.Owner)
	}
}

func TestIdeaService_ListingCacheInvalidatedByDelete(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, collabs, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()
	svc := NewIdeaService(ideas, comments, likes, collabs, cache)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	idea := createApprovedIdea(t, gdb, owner, "Ephemeral")

	ctx := context.Background()
	listing, err := svc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(listing) != 1 {
		t.Fatalf("Expected 1 idea, got %d", len(listing))
	}

	if err := svc.Delete(ctx, owner, idea.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	listing, err = svc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved after delete: %v", err)
	}
	if len(listing) != 0 {
		t.Errorf("Deleted idea still in listing")
	}
}

func TestIdeaService_UpdateRequiresOwnerOrAdmin(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, comments, likes, collabs, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()
	svc := NewIdeaService(ideas, comments, likes, collabs, cache)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	stranger := createTestUser(t, gdb, "Stranger", "s@example.com", constants.RoleInnovator)
	admin := createTestUser(t, gdb, "Admin", "admin@example.com", constants.RoleAdmin)
	idea := createApprovedIdea(t, gdb, owner, "Original")

	ctx := context.Background()
	newTitle := "Renamed"

	_, err := svc.Update(ctx, stranger, idea.ID, requests.UpdateIdeaRequest{Title: &newTitle})
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 403 {
		t.Fatalf("Stranger update should 403, got %v", err)
	}

	if _, err := svc.Update(ctx, owner, idea.ID, requests.UpdateIdeaRequest{Title: &newTitle}); err != nil {
		t.Fatalf("Owner update: %v", err)
	}

	adminTitle := "Admin renamed"
	updated, err := svc.Update(ctx, admin, idea.ID, requests.UpdateIdeaRequest{Title: &adminTitle})
	if err != nil {
		t.Fatalf("Admin update: %v", err)
	}
	if updated.Title != adminTitle {
		t.Errorf("Title = %q", updated.Title)
	}
}
