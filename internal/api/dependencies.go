package api

import (
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/config"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/metrics"
	"odr-lab/platform/internal/services"
)

type Repositories struct {
	Users       *repositories.UserRepository
	Submissions *repositories.SubmissionRepository
	Ideas       *repositories.IdeaRepository
	Comments    *repositories.CommentRepository
	Likes       *repositories.LikeRepository
	Collabs     *repositories.CollaborationRepository
	Meetings    *repositories.MeetingRepository
	Analytics   *repositories.AnalyticsRepository
}

type Services struct {
	Auth        *services.AuthService
	Submissions *services.SubmissionService
	Ideas       *services.IdeaService
	Discussion  *services.DiscussionService
	Collab      *services.CollaborationService
	Meetings    *services.MeetingService
	Admin       *services.AdminService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Cache    common.CacheInterface
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(gormDB *gorm.DB, sqlxDB *sqlx.DB, cfg config.Config, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *Dependencies {
	repos := &Repositories{
		Users:       repositories.NewUserRepository(gormDB),
		Submissions: repositories.NewSubmissionRepository(gormDB),
		Ideas:       repositories.NewIdeaRepository(gormDB),
		Comments:    repositories.NewCommentRepository(gormDB),
		Likes:       repositories.NewLikeRepository(gormDB),
		Collabs:     repositories.NewCollaborationRepository(gormDB),
		Meetings:    repositories.NewMeetingRepository(gormDB),
		Analytics:   repositories.NewAnalyticsRepository(sqlxDB),
	}

	jaas := services.JaaSConfig{
		AppID:  cfg.JaaSAppID,
		SDKID:  cfg.JaaSSDKID,
		Secret: cfg.JaaSSecret,
	}

	svcs := &Services{
		Auth:        services.NewAuthService(repos.Users, cfg.JWTSecret),
		Submissions: services.NewSubmissionService(repos.Submissions, repos.Ideas, cache, metricsReg),
		Ideas:       services.NewIdeaService(repos.Ideas, repos.Comments, repos.Likes, repos.Collabs, cache),
		Discussion:  services.NewDiscussionService(repos.Ideas, repos.Comments, repos.Likes, metricsReg),
		Collab:      services.NewCollaborationService(repos.Ideas, repos.Collabs),
		Meetings:    services.NewMeetingService(repos.Meetings, repos.Ideas, repos.Collabs, jaas, metricsReg),
		Admin:       services.NewAdminService(repos.Users, repos.Analytics),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Cache:    cache,
		Metrics:  metricsReg,
	}
}
