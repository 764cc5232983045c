package requests

import "time"

type SignupRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	UserRole         string  `json:"userRole"`
	ContactNumber    *string `json:"contactNumber"`
	City             *string `json:"city"`
	Country          *string `json:"country"`
	Institution      *string `json:"institution"`
	HighestEducation *string `json:"highestEducation"`
	OdrLabUsage      *string `json:"odrLabUsage"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name             *string `json:"name"`
	ContactNumber    *string `json:"contactNumber"`
	City             *string `json:"city"`
	Country          *string `json:"country"`
	Institution      *string `json:"institution"`
	HighestEducation *string `json:"highestEducation"`
	OdrLabUsage      *string `json:"odrLabUsage"`
}

// SubmitIdeaRequest mirrors the public submission form field names.
type SubmitIdeaRequest struct {
	Title         string  `json:"title"`
	IdeaCaption   *string `json:"idea_caption"`
	Description   string  `json:"description"`
	OdrExperience *string `json:"odr_experience"`
	Consent       bool    `json:"consent"`
}

type ApproveIdeaRequest struct {
	IdeaID string `json:"ideaId"`
}

type RejectIdeaRequest struct {
	SubmissionID string  `json:"submissionId"`
	Reason       *string `json:"reason"`
}

// CreateIdeaRequest is the admin-only direct idea creation payload.
type CreateIdeaRequest struct {
	Title              string  `json:"title"`
	Caption            *string `json:"caption"`
	Description        string  `json:"description"`
	PriorOdrExperience *string `json:"priorOdrExperience"`
	OwnerID            string  `json:"ownerId"`
}

type UpdateIdeaRequest struct {
	Title              *string `json:"title"`
	Caption            *string `json:"caption"`
	Description        *string `json:"description"`
	PriorOdrExperience *string `json:"priorOdrExperience"`
}

type PostCommentRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parentId"`
}

type CreateMeetingRequest struct {
	IdeaID      string     `json:"ideaId"`
	Title       *string    `json:"title"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

type UpdateMeetingStatusRequest struct {
	Status string `json:"status"`
}

type UpdateUserRequest struct {
	Name             *string `json:"name"`
	UserRole         *string `json:"userRole"`
	ContactNumber    *string `json:"contactNumber"`
	City             *string `json:"city"`
	Country          *string `json:"country"`
	Institution      *string `json:"institution"`
	HighestEducation *string `json:"highestEducation"`
	OdrLabUsage      *string `json:"odrLabUsage"`
}
