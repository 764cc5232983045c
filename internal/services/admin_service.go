package services

import (
	"context"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/logging"
	"odr-lab/platform/internal/models/dtos/requests"
	"odr-lab/platform/internal/models/dtos/responses"
)

// AdminService covers user administration and the analytics dashboard.
type AdminService struct {
	users     *repositories.UserRepository
	analytics *repositories.AnalyticsRepository
}

func NewAdminService(users *repositories.UserRepository, analytics *repositories.AnalyticsRepository) *AdminService {
	return &AdminService{users: users, analytics: analytics}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]responses.UserProfile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch users", err)
	}

	result := make([]responses.UserProfile, 0, len(users))
	for i := range users {
		result = append(result, toUserProfile(&users[i]))
	}
	return result, nil
}

func (s *AdminService) GetUser(ctx context.Context, userID string) (*responses.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch user", err)
	}
	if user == nil {
		return nil, common.ErrNotFound("User not found")
	}

	profile := toUserProfile(user)
	return &profile, nil
}

// UpdateUser is the admin edit: profile fields plus the role itself. Role
// changes take effect on the user's next request because the auth guard
// rehydrates from the store.
func (s *AdminService) UpdateUser(ctx context.Context, userID string, req requests.UpdateUserRequest) (*responses.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, common.ErrInternal("Failed to update user", err)
	}
	if user == nil {
		return nil, common.ErrNotFound("User not found")
	}

	if req.UserRole != nil {
		role := constants.UserRole(*req.UserRole)
		if !role.Valid() {
			return nil, common.ErrValidation("Invalid role")
		}
		user.UserRole = role
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, common.ErrValidation("Name cannot be empty")
		}
		user.Name = *req.Name
	}
	if req.ContactNumber != nil {
		user.ContactNumber = req.ContactNumber
	}
	if req.City != nil {
		user.City = req.City
	}
	if req.Country != nil {
		user.Country = req.Country
	}
	if req.Institution != nil {
		user.Institution = req.Institution
	}
	if req.HighestEducation != nil {
		user.HighestEducation = req.HighestEducation
	}
	if req.OdrLabUsage != nil {
		user.OdrLabUsage = req.OdrLabUsage
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, common.ErrInternal("Failed to update user", err)
	}

	logging.Info("User updated by admin", "user_id", userID)
	profile := toUserProfile(user)
	return &profile, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return common.ErrInternal("Failed to delete user", err)
	}
	if user == nil {
		return common.ErrNotFound("User not found")
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return common.ErrInternal("Failed to delete user", err)
	}

	logging.Info("User deleted by admin", "user_id", userID)
	return nil
}

func (s *AdminService) Analytics(ctx context.Context) (*responses.Analytics, error) {
	totals, err := s.analytics.PlatformTotals(ctx)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch analytics", err)
	}
	byRole, err := s.analytics.UserCountsByRole(ctx)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch analytics", err)
	}
	submissions, err := s.analytics.SubmissionCounts(ctx)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch analytics", err)
	}

	return &responses.Analytics{
		Totals:      *totals,
		UsersByRole: byRole,
		Submissions: *submissions,
	}, nil
}
