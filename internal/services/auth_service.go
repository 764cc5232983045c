package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"odr-lab/platform/internal/auth"
	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	gormModels "odr-lab/platform/internal/models/gorm"
	"odr-lab/platform/internal/models/dtos/requests"
	"odr-lab/platform/internal/models/dtos/responses"
)

const sessionTokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	users     *repositories.UserRepository
	jwtSecret []byte
}

func NewAuthService(users *repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Signup(ctx context.Context, req requests.SignupRequest) (*responses.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.ErrValidation("Name, email, and password are required")
	}

	role := constants.UserRole(req.UserRole)
	if req.UserRole == "" || !role.Valid() {
		role = constants.RoleInnovator
	}
	if role == constants.RoleAdmin {
		// admin accounts are provisioned, never self-registered
		return nil, common.ErrValidation("Invalid role")
	}

	// stored emails are normalized, so the lookup must use the same form
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, common.ErrInternal("Failed to create account", err)
	}
	if existing != nil {
		return nil, common.ErrConflict(constants.MsgEmailInUse)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal("Failed to create account", err)
	}

	user := &gormModels.User{
		Name:             req.Name,
		Email:            email,
		Password:         string(hashed),
		UserRole:         role,
		ContactNumber:    req.ContactNumber,
		City:             req.City,
		Country:          req.Country,
		Institution:      req.Institution,
		HighestEducation: req.HighestEducation,
		OdrLabUsage:      req.OdrLabUsage,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, common.ErrConflict(constants.MsgEmailInUse)
		}
		return nil, common.ErrInternal("Failed to create account", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.ErrInternal("Failed to issue session token", err)
	}

	return &responses.AuthResponse{Token: token, User: toUserProfile(user)}, nil
}

func (s *AuthService) Login(ctx context.Context, req requests.LoginRequest) (*responses.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrValidation("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, common.ErrInternal("Login failed", err)
	}
	if user == nil {
		return nil, common.ErrUnauthorized(constants.MsgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, common.ErrUnauthorized(constants.MsgInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.ErrInternal("Failed to issue session token", err)
	}

	return &responses.AuthResponse{Token: token, User: toUserProfile(user)}, nil
}

// Session echoes the store-hydrated account attached by the auth guard.
func (s *AuthService) Session(user *gormModels.User) *responses.SessionResponse {
	return &responses.SessionResponse{User: toUserProfile(user)}
}

func (s *AuthService) UpdateProfile(ctx context.Context, user *gormModels.User, req requests.UpdateProfileRequest) (*responses.UserProfile, error) {
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
		return nil, common.ErrInternal("Failed to update profile", err)
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func (s *AuthService) issueToken(user *gormModels.User) (string, error) {
	now := time.Now()
	claims := auth.SessionClaims{
		UserID:   user.ID,
		Email:    user.Email,
		UserRole: user.UserRole.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
