package constants

// Raw SQL used by the sqlx analytics repository. Kept here so the aggregate
// shapes are reviewable in one place.
const (
	QueryUserCountsByRole = `
		SELECT user_role AS role, COUNT(*) AS total
		FROM users
		GROUP BY user_role`

	QuerySubmissionCounts = `
		SELECT
			COUNT(*)                                               AS total,
			COUNT(*) FILTER (WHERE reviewed = false)               AS pending,
			COUNT(*) FILTER (WHERE reviewed = true AND approved)   AS approved,
			COUNT(*) FILTER (WHERE rejected = true)                AS rejected
		FROM idea_submissions`

	QueryPlatformTotals = `
		SELECT
			(SELECT COUNT(*) FROM users)                           AS users,
			(SELECT COUNT(*) FROM ideas WHERE approved = true)     AS published_ideas,
			(SELECT COUNT(*) FROM comments)                        AS comments,
			(SELECT COUNT(*) FROM likes)                           AS likes,
			(SELECT COUNT(*) FROM meeting_logs)                    AS meetings`
)
