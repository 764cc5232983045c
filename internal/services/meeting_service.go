package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/logging"
	"odr-lab/platform/internal/metrics"
	gormModels "odr-lab/platform/internal/models/gorm"
	"odr-lab/platform/internal/models/dtos/requests"
	"odr-lab/platform/internal/models/dtos/responses"
)

const meetingTokenTTL = time.Hour

// JaaSConfig is the signing triplet for the external video provider.
type JaaSConfig struct {
	AppID string
	SDKID string
	// base64-encoded shared secret
	Secret string
}

// MeetingService schedules meetings on ideas and issues the signed JaaS
// join tokens. Token issuance is pure: it never mutates the store.
type MeetingService struct {
	meetings   *repositories.MeetingRepository
	ideas      *repositories.IdeaRepository
	collabs    *repositories.CollaborationRepository
	jaas       JaaSConfig
	metricsReg *metrics.MetricsRegistry
}

func NewMeetingService(
	meetings *repositories.MeetingRepository,
	ideas *repositories.IdeaRepository,
	collabs *repositories.CollaborationRepository,
	jaas JaaSConfig,
	metricsReg *metrics.MetricsRegistry,
) *MeetingService {
	return &MeetingService{
		meetings:   meetings,
		ideas:      ideas,
		collabs:    collabs,
		jaas:       jaas,
		metricsReg: metricsReg,
	}
}

// Create schedules a meeting on an approved idea. Only the owner, a
// collaborator, or a mentor of the idea may schedule.
func (s *MeetingService) Create(ctx context.Context, user *gormModels.User, req requests.CreateMeetingRequest) (*responses.Meeting, error) {
	if req.IdeaID == "" {
		return nil, common.ErrValidation("ideaId is required")
	}

	idea, err := s.ideas.GetApprovedByID(ctx, req.IdeaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to create meeting", err)
	}
	if idea == nil {
		return nil, common.ErrNotFound(constants.MsgIdeaNotFound)
	}

	member, err := s.isTeamMember(ctx, user, idea)
	if err != nil {
		return nil, common.ErrInternal("Failed to create meeting", err)
	}
	if !member {
		return nil, common.ErrForbidden("Only the idea team can schedule meetings")
	}

	meeting := &gormModels.MeetingLog{
		IdeaID:        idea.ID,
		CreatedBy:     user.ID,
		Title:         req.Title,
		JitsiRoomName: fmt.Sprintf("odr-lab-%s-%s", idea.ID, uuid.NewString()[:8]),
		Status:        constants.MeetingScheduled,
		ScheduledAt:   req.ScheduledAt,
	}

	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, common.ErrInternal("Failed to create meeting", err)
	}

	logging.Info("Meeting created", "meeting_id", meeting.ID, "idea_id", idea.ID, "created_by", user.ID)

	result := toMeeting(meeting)
	return &result, nil
}

func (s *MeetingService) Get(ctx context.Context, meetingID string) (*responses.Meeting, error) {
	meeting, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch meeting", err)
	}
	if meeting == nil {
		return nil, common.ErrNotFound(constants.MsgMeetingNotFound)
	}

	result := toMeeting(meeting)
	return &result, nil
}

func (s *MeetingService) ListByIdea(ctx context.Context, ideaID string) ([]responses.Meeting, error) {
	meetings, err := s.meetings.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch meetings", err)
	}

	result := make([]responses.Meeting, 0, len(meetings))
	for i := range meetings {
		result = append(result, toMeeting(&meetings[i]))
	}
	return result, nil
}

// UpdateStatus advances a meeting along SCHEDULED -> ACTIVE -> ENDED,
// stamping the matching timestamp. Any other transition is a validation
// error.
func (s *MeetingService) UpdateStatus(ctx context.Context, meetingID string, status string) error {
	var from constants.MeetingStatus
	ms := constants.MeetingStatus(status)
	switch ms {
	case constants.MeetingActive:
		from = constants.MeetingScheduled
	case constants.MeetingEnded:
		from = constants.MeetingActive
	default:
		return common.ErrValidation("Invalid status")
	}

	meeting, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return common.ErrInternal("Failed to update meeting status", err)
	}
	if meeting == nil {
		return common.ErrNotFound(constants.MsgMeetingNotFound)
	}
	if meeting.Status != from {
		return common.ErrValidation("Invalid status transition")
	}

	updated, err := s.meetings.SetStatus(ctx, meetingID, from, ms)
	if err != nil {
		return common.ErrInternal("Failed to update meeting status", err)
	}
	if !updated {
		// lost a race with another transition
		return common.ErrValidation("Invalid status transition")
	}
	return nil
}

// IssueToken builds the signed JaaS join token for the caller: audience
// "jitsi", issuer app id, subject "meet.jit.si", the meeting's room name,
// one-hour expiry, and the caller's identity embedded in the context claim.
// Signed HS256 over the base64-decoded shared secret with the SDK id as the
// key id header.
func (s *MeetingService) IssueToken(ctx context.Context, user *gormModels.User, meetingID string) (*responses.MeetingToken, error) {
	meeting, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return nil, common.ErrInternal("Failed to issue meeting token", err)
	}
	if meeting == nil {
		return nil, common.ErrNotFound(constants.MsgMeetingNotFound)
	}

	secret, err := base64.StdEncoding.DecodeString(s.jaas.Secret)
	if err != nil {
		return nil, common.ErrInternal("Failed to issue meeting token", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"aud":  "jitsi",
		"iss":  s.jaas.AppID,
		"sub":  "meet.jit.si",
		"room": meeting.JitsiRoomName,
		"exp":  now.Add(meetingTokenTTL).Unix(),
		"context": map[string]interface{}{
			"user": map[string]interface{}{
				"name":  user.Name,
				"email": user.Email,
				"id":    user.ID,
			},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = s.jaas.SDKID

	signed, err := token.SignedString(secret)
	if err != nil {
		return nil, common.ErrInternal("Failed to issue meeting token", err)
	}

	s.metricsReg.MeetingTokensIssuedTotal.Inc()
	return &responses.MeetingToken{Token: signed}, nil
}

func (s *MeetingService) isTeamMember(ctx context.Context, user *gormModels.User, idea *gormModels.Idea) (bool, error) {
	if idea.OwnerID == user.ID {
		return true, nil
	}
	collab, err := s.collabs.GetCollaborator(ctx, user.ID, idea.ID)
	if err != nil {
		return false, err
	}
	if collab != nil {
		return true, nil
	}
	mentor, err := s.collabs.GetMentor(ctx, user.ID, idea.ID)
	if err != nil {
		return false, err
	}
	return mentor != nil, nil
}
