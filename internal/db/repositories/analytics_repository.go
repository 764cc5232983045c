package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/models/dtos/responses"
)

// AnalyticsRepository runs the raw aggregate queries behind the admin
// dashboard. These stay on sqlx: they are plain SQL reporting reads with no
// entity mapping worth pushing through the ORM.
type AnalyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db}
}

func (r *AnalyticsRepository) UserCountsByRole(ctx context.Context) ([]responses.RoleCount, error) {
	var counts []responses.RoleCount

	if err := r.db.SelectContext(ctx, &counts, constants.QueryUserCountsByRole); err != nil {
		return nil, fmt.Errorf("failed to fetch role counts: %w", err)
	}

	return counts, nil
}

func (r *AnalyticsRepository) SubmissionCounts(ctx context.Context) (*responses.SubmissionCounts, error) {
	var counts responses.SubmissionCounts

	if err := r.db.QueryRowxContext(ctx, constants.QuerySubmissionCounts).StructScan(&counts); err != nil {
		return nil, fmt.Errorf("failed to fetch submission counts: %w", err)
	}

	return &counts, nil
}

func (r *AnalyticsRepository) PlatformTotals(ctx context.Context) (*responses.PlatformTotals, error) {
	var totals responses.PlatformTotals

	if err := r.db.QueryRowxContext(ctx, constants.QueryPlatformTotals).StructScan(&totals); err != nil {
		return nil, fmt.Errorf("failed to fetch platform totals: %w", err)
	}

	return &totals, nil
}
