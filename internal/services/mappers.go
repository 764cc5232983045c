package services

import (
	gormModels "odr-lab/platform/internal/models/gorm"
	"odr-lab/platform/internal/models/dtos/responses"
)

func toUserProfile(user *gormModels.User) responses.UserProfile {
	return responses.UserProfile{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		UserRole:         user.UserRole.String(),
		ContactNumber:    user.ContactNumber,
		City:             user.City,
		Country:          user.Country,
		Institution:      user.Institution,
		HighestEducation: user.HighestEducation,
		OdrLabUsage:      user.OdrLabUsage,
		CreatedAt:        user.CreatedAt,
	}
}

func toUserSummary(user *gormModels.User) responses.UserSummary {
	return responses.UserSummary{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		UserRole:    user.UserRole.String(),
		Country:     user.Country,
		Institution: user.Institution,
		City:        user.City,
	}
}

func toIdeaSummary(idea *gormModels.Idea) responses.IdeaSummary {
	summary := responses.IdeaSummary{
		ID:           idea.ID,
		Title:        idea.Title,
		Description:  idea.Description,
		SubmittedAt:  idea.CreatedAt,
		Likes:        int64(len(idea.Likes)),
		CommentCount: int64(len(idea.Comments)),
	}
	if idea.Caption != nil {
		summary.Caption = *idea.Caption
	}
	summary.Name = idea.Owner.Name
	summary.Email = idea.Owner.Email
	if idea.Owner.Country != nil {
		summary.Country = *idea.Owner.Country
	}
	return summary
}

func toMeeting(meeting *gormModels.MeetingLog) responses.Meeting {
	return responses.Meeting{
		ID:            meeting.ID,
		IdeaID:        meeting.IdeaID,
		Title:         meeting.Title,
		JitsiRoomName: meeting.JitsiRoomName,
		Status:        string(meeting.Status),
		ScheduledAt:   meeting.ScheduledAt,
		StartedAt:     meeting.StartedAt,
		EndedAt:       meeting.EndedAt,
		CreatedAt:     meeting.CreatedAt,
		CreatedBy:     meeting.CreatedBy,
	}
}
