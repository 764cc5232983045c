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

func TestSubmissionService_SubmitApproveListing(t *testing.T) {
	gdb := setupTestDB(t)
	_, submissions, ideas, comments, likes, collabs, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()

	subSvc := NewSubmissionService(submissions, ideas, cache, testMetrics)
	ideaSvc := NewIdeaService(ideas, comments, likes, collabs, cache)

	owner := createTestUser(t, gdb, "Uma", "uma@example.com", constants.RoleInnovator)
	admin := createTestUser(t, gdb, "Admin", "admin@example.com", constants.RoleAdmin)

	ctx := context.Background()
	exp := "Z"
	ack, err := subSvc.SubmitIdea(ctx, owner.ID, requests.SubmitIdeaRequest{
		Title:         "X",
		Description:   "Y",
		OdrExperience: &exp,
		Consent:       true,
	})
	if err != nil {
		t.Fatalf("SubmitIdea: %v", err)
	}

	// not visible before approval
	listing, err := ideaSvc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(listing) != 0 {
		t.Fatalf("Expected empty listing before approval, got %d", len(listing))
	}

	var submission gormModels.IdeaSubmission
	if err := gdb.First(&submission, "id = ?", ack.SubmissionID).Error; err != nil {
		t.Fatalf("Submission not persisted: %v", err)
	}
	if submission.Reviewed {
		t.Error("New submission should not be reviewed")
	}

	published, err := subSvc.Approve(ctx, admin.ID, ack.SubmissionID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if published.Title != "X" {
		t.Errorf("Published title = %q, want X", published.Title)
	}

	if err := gdb.First(&submission, "id = ?", ack.SubmissionID).Error; err != nil {
		t.Fatalf("Reloading submission: %v", err)
	}
	if !submission.Reviewed || !submission.Approved {
		t.Error("Approved submission should be reviewed and approved")
	}

	listing, err = ideaSvc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved after approve: %v", err)
	}
	if len(listing) != 1 {
		t.Fatalf("Expected 1 published idea, got %d", len(listing))
	}
	if listing[0].Name != "Uma" || listing[0].Email != "uma@example.com" {
		t.Errorf("Listing owner = %s/%s", listing[0].Name, listing[0].Email)
	}
}

func TestSubmissionService_ApproveTwiceConflicts(t *testing.T) {
	gdb := setupTestDB(t)
	_, submissions, ideas, _, _, _, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()

	svc := NewSubmissionService(submissions, ideas, cache, testMetrics)
	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	admin := createTestUser(t, gdb, "Admin", "admin2@example.com", constants.RoleAdmin)

	ctx := context.Background()
	ack, err := svc.SubmitIdea(ctx, owner.ID, requests.SubmitIdeaRequest{
		Title: "Once", Description: "Only", Consent: true,
	})
	if err != nil {
		t.Fatalf("SubmitIdea: %v", err)
	}

	if _, err := svc.Approve(ctx, admin.ID, ack.SubmissionID); err != nil {
		t.Fatalf("First approve: %v", err)
	}

	_, err = svc.Approve(ctx, admin.ID, ack.SubmissionID)
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 409 {
		t.Fatalf("Second approve should be a 409 conflict, got %v", err)
	}

	// exactly one published idea came out of the double approval
	var count int64
	gdb.Model(&gormModels.Idea{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 idea, got %d", count)
	}
}

func TestSubmissionService_RejectIsTerminal(t *testing.T) {
	gdb := setupTestDB(t)
	_, submissions, ideas, _, _, _, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()

	svc := NewSubmissionService(submissions, ideas, cache, testMetrics)
	owner := createTestUser(t, gdb, "Owner", "owner3@example.com", constants.RoleInnovator)
	admin := createTestUser(t, gdb, "Admin", "admin3@example.com", constants.RoleAdmin)

	ctx := context.Background()
	ack, err := svc.SubmitIdea(ctx, owner.ID, requests.SubmitIdeaRequest{
		Title: "Doomed", Description: "Nope", Consent: true,
	})
	if err != nil {
		t.Fatalf("SubmitIdea: %v", err)
	}

	reason := "Out of scope"
	if err := svc.Reject(ctx, admin.ID, ack.SubmissionID, &reason); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	// a rejected submission cannot be approved afterwards
	_, err = svc.Approve(ctx, admin.ID, ack.SubmissionID)
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 409 {
		t.Fatalf("Approve after reject should conflict, got %v", err)
	}

	var submission gormModels.IdeaSubmission
	if err := gdb.First(&submission, "id = ?", ack.SubmissionID).Error; err != nil {
		t.Fatalf("Reloading submission: %v", err)
	}
	if !submission.Rejected || submission.RejectionReason == nil || *submission.RejectionReason != reason {
		t.Error("Rejection state not recorded")
	}
}

func TestSubmissionService_PublishedIdeaRecordsSubmission(t *testing.T) {
	gdb := setupTestDB(t)
	_, submissions, ideas, _, _, _, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()

	svc := NewSubmissionService(submissions, ideas, cache, testMetrics)
	owner := createTestUser(t, gdb, "Owner", "owner5@example.com", constants.RoleInnovator)
	admin := createTestUser(t, gdb, "Admin", "admin5@example.com", constants.RoleAdmin)

	ctx := context.Background()
	ack, err := svc.SubmitIdea(ctx, owner.ID, requests.SubmitIdeaRequest{
		Title: "Linked", Description: "D", Consent: true,
	})
	if err != nil {
		t.Fatalf("SubmitIdea: %v", err)
	}
	published, err := svc.Approve(ctx, admin.ID, ack.SubmissionID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}

	var idea gormModels.Idea
	if err := gdb.First(&idea, "id = ?", published.ID).Error; err != nil {
		t.Fatalf("Reloading idea: %v", err)
	}
	if idea.SubmissionID == nil || *idea.SubmissionID != ack.SubmissionID {
		t.Errorf("Published idea submission link = %v, want %s", idea.SubmissionID, ack.SubmissionID)
	}
}

func TestSubmissionService_DirectApprovalClosesExactSubmission(t *testing.T) {
	gdb := setupTestDB(t)
	_, submissions, ideas, _, _, _, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()

	svc := NewSubmissionService(submissions, ideas, cache, testMetrics)
	owner := createTestUser(t, gdb, "Owner", "owner6@example.com", constants.RoleInnovator)
	admin := createTestUser(t, gdb, "Admin", "admin6@example.com", constants.RoleAdmin)

	ctx := context.Background()

	// two pending submissions with the same title; the idea row links the
	// first one, so that is the one the direct approval must close
	first, err := svc.SubmitIdea(ctx, owner.ID, requests.SubmitIdeaRequest{
		Title: "Same Title", Description: "First attempt", Consent: true,
	})
	if err != nil {
		t.Fatalf("SubmitIdea first: %v", err)
	}
	second, err := svc.SubmitIdea(ctx, owner.ID, requests.SubmitIdeaRequest{
		Title: "Same Title", Description: "Second attempt", Consent: true,
	})
	if err != nil {
		t.Fatalf("SubmitIdea second: %v", err)
	}

	idea := &gormModels.Idea{
		Title:        "Same Title",
		Description:  "First attempt",
		OwnerID:      owner.ID,
		SubmissionID: &first.SubmissionID,
	}
	if err := gdb.Create(idea).Error; err != nil {
		t.Fatalf("Creating idea: %v", err)
	}

	if err := svc.ApproveIdeaDirect(ctx, admin.ID, idea.ID); err != nil {
		t.Fatalf("ApproveIdeaDirect: %v", err)
	}

	var linked, unrelated gormModels.IdeaSubmission
	if err := gdb.First(&linked, "id = ?", first.SubmissionID).Error; err != nil {
		t.Fatalf("Reloading linked submission: %v", err)
	}
	if err := gdb.First(&unrelated, "id = ?", second.SubmissionID).Error; err != nil {
		t.Fatalf("Reloading other submission: %v", err)
	}
	if !linked.Reviewed || !linked.Approved {
		t.Error("Linked submission should be closed by direct approval")
	}
	if unrelated.Reviewed {
		t.Error("Same-titled unrelated submission should stay pending")
	}
}

func TestSubmissionService_ConsentRequired(t *testing.T) {
	gdb := setupTestDB(t)
	_, submissions, ideas, _, _, _, _ := newTestRepos(gdb)
	cache := common.NewCacheService(time.Minute, time.Minute)
	defer cache.Close()

	svc := NewSubmissionService(submissions, ideas, cache, testMetrics)
	owner := createTestUser(t, gdb, "Owner", "owner4@example.com", constants.RoleInnovator)

	_, err := svc.SubmitIdea(context.Background(), owner.ID, requests.SubmitIdeaRequest{
		Title: "T", Description: "D", Consent: false,
	})
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 400 {
		t.Fatalf("Missing consent should be a 400, got %v", err)
	}
}
