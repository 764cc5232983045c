package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/models/dtos/requests"
)

var testJaaS = JaaSConfig{
	AppID:  "vpaas-magic-cookie-test",
	SDKID:  "sdk-key-1",
	Secret: base64.StdEncoding.EncodeToString([]byte("jaas-shared-secret")),
}

func TestMeetingService_TokenClaimsRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, _, _, collabs, meetings := newTestRepos(gdb)
	svc := NewMeetingService(meetings, ideas, collabs, testJaaS, testMetrics)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	idea := createApprovedIdea(t, gdb, owner, "Meet about this")

	ctx := context.Background()
	meeting, err := svc.Create(ctx, owner, requests.CreateMeetingRequest{IdeaID: idea.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(meeting.JitsiRoomName, "odr-lab-"+idea.ID+"-") {
		t.Errorf("Room name = %q", meeting.JitsiRoomName)
	}

	tok, err := svc.IssueToken(ctx, owner, meeting.ID)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("jaas-shared-secret"), nil
	}, jwt.WithAudience("jitsi"))
	if err != nil || !parsed.Valid {
		t.Fatalf("Token should verify against the decoded secret: %v", err)
	}

	if parsed.Header["kid"] != testJaaS.SDKID {
		t.Errorf("kid header = %v, want %s", parsed.Header["kid"], testJaaS.SDKID)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["iss"] != testJaaS.AppID {
		t.Errorf("iss = %v", claims["iss"])
	}
	if claims["sub"] != "meet.jit.si" {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["room"] != meeting.JitsiRoomName {
		t.Errorf("room = %v, want %s", claims["room"], meeting.JitsiRoomName)
	}

	userCtx := claims["context"].(map[string]interface{})["user"].(map[string]interface{})
	if userCtx["name"] != "Owner" || userCtx["email"] != "owner@example.com" || userCtx["id"] != owner.ID {
		t.Errorf("context.user = %v", userCtx)
	}
}

func TestMeetingService_TokenForMissingMeeting(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, _, _, collabs, meetings := newTestRepos(gdb)
	svc := NewMeetingService(meetings, ideas, collabs, testJaaS, testMetrics)

	user := createTestUser(t, gdb, "U", "u@example.com", constants.RoleInnovator)

	_, err := svc.IssueToken(context.Background(), user, "no-such-meeting")
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 404 {
		t.Fatalf("Missing meeting should 404, got %v", err)
	}
	if wfErr.Message != constants.MsgMeetingNotFound {
		t.Errorf("Message = %q", wfErr.Message)
	}
}

func TestMeetingService_OnlyTeamSchedules(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, _, _, collabRepo, meetings := newTestRepos(gdb)
	svc := NewMeetingService(meetings, ideas, collabRepo, testJaaS, testMetrics)
	collabSvc := NewCollaborationService(ideas, collabRepo)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	outsider := createTestUser(t, gdb, "Outsider", "out@example.com", constants.RoleInnovator)
	idea := createApprovedIdea(t, gdb, owner, "Team only")

	ctx := context.Background()

	_, err := svc.Create(ctx, outsider, requests.CreateMeetingRequest{IdeaID: idea.ID})
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 403 {
		t.Fatalf("Outsider schedule should 403, got %v", err)
	}

	// joining the team unlocks scheduling
	if _, err := collabSvc.JoinCollaborator(ctx, outsider, idea.ID); err != nil {
		t.Fatalf("JoinCollaborator: %v", err)
	}
	if _, err := svc.Create(ctx, outsider, requests.CreateMeetingRequest{IdeaID: idea.ID}); err != nil {
		t.Fatalf("Collaborator schedule: %v", err)
	}
}

func TestMeetingService_StatusTransitions(t *testing.T) {
	gdb := setupTestDB(t)
	_, _, ideas, _, _, collabs, meetings := newTestRepos(gdb)
	svc := NewMeetingService(meetings, ideas, collabs, testJaaS, testMetrics)

	owner := createTestUser(t, gdb, "Owner", "owner@example.com", constants.RoleInnovator)
	idea := createApprovedIdea(t, gdb, owner, "Scheduled")

	ctx := context.Background()
	meeting, err := svc.Create(ctx, owner, requests.CreateMeetingRequest{IdeaID: idea.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.UpdateStatus(ctx, meeting.ID, "ACTIVE"); err != nil {
		t.Fatalf("UpdateStatus ACTIVE: %v", err)
	}
	got, err := svc.Get(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != "ACTIVE" || got.StartedAt == nil {
		t.Errorf("After ACTIVE: status=%s startedAt=%v", got.Status, got.StartedAt)
	}

	if err := svc.UpdateStatus(ctx, meeting.ID, "ENDED"); err != nil {
		t.Fatalf("UpdateStatus ENDED: %v", err)
	}
	got, _ = svc.Get(ctx, meeting.ID)
	if got.Status != "ENDED" || got.EndedAt == nil {
		t.Errorf("After ENDED: status=%s endedAt=%v", got.Status, got.EndedAt)
	}

	err = svc.UpdateStatus(ctx, meeting.ID, "SCHEDULED")
	var wfErr *common.WorkflowError
	if !errors.As(err, &wfErr) || wfErr.Status != 400 {
		t.Fatalf("Reverting to SCHEDULED should be a 400, got %v", err)
	}

	// an ended meeting cannot restart; started_at stays untouched
	err = svc.UpdateStatus(ctx, meeting.ID, "ACTIVE")
	if !errors.As(err, &wfErr) || wfErr.Status != 400 {
		t.Fatalf("ENDED to ACTIVE should be a 400, got %v", err)
	}
	after, _ := svc.Get(ctx, meeting.ID)
	if after.Status != "ENDED" {
		t.Errorf("Status after rejected restart = %s, want ENDED", after.Status)
	}
	if after.StartedAt == nil || !after.StartedAt.Equal(*got.StartedAt) {
		t.Errorf("started_at changed by rejected restart: %v vs %v", after.StartedAt, got.StartedAt)
	}
}
