package responses

import "time"

// UserProfile is the full self-view of an account. The password hash never
// appears on any response shape.
type UserProfile struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	UserRole         string    `json:"userRole"`
	ContactNumber    *string   `json:"contactNumber"`
	City             *string   `json:"city"`
	Country          *string   `json:"country"`
	Institution      *string   `json:"institution"`
	HighestEducation *string   `json:"highestEducation"`
	OdrLabUsage      *string   `json:"odrLabUsage"`
	CreatedAt        time.Time `json:"createdAt"`
}

// UserSummary is the reduced author/owner view embedded in other payloads.
type UserSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	UserRole    string  `json:"userRole"`
	Country     *string `json:"country,omitempty"`
	Institution *string `json:"institution,omitempty"`
	City        *string `json:"city,omitempty"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type SessionResponse struct {
	User UserProfile `json:"user"`
}

type SubmissionAck struct {
	SubmissionID string `json:"submissionId"`
	Message      string `json:"message"`
}

type PendingSubmission struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	IdeaCaption   string      `json:"ideaCaption"`
	Description   string      `json:"description"`
	OdrExperience string      `json:"odrExperience"`
	CreatedAt     time.Time   `json:"createdAt"`
	Owner         UserSummary `json:"owner"`
}

// IdeaSummary is one row of the approved-ideas listing.
type IdeaSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Caption      string    `json:"caption"`
	Description  string    `json:"description"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Country      string    `json:"country"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Likes        int64     `json:"likes"`
	CommentCount int64     `json:"commentCount"`
}

// CommentNode is the canonical comment shape: author info nests under
// "author", replies recurse.
type CommentNode struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	ParentID  *string       `json:"parentId"`
	CreatedAt time.Time     `json:"createdAt"`
	Author    UserSummary   `json:"author"`
	Likes     int64         `json:"likes"`
	Replies   []CommentNode `json:"replies"`
}

type IdeaDetail struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Caption            *string        `json:"caption"`
	Description        string         `json:"description"`
	PriorOdrExperience *string        `json:"priorOdrExperience"`
	CreatedAt          time.Time      `json:"createdAt"`
	Owner              UserSummary    `json:"owner"`
	Likes              int64          `json:"likes"`
	Comments           []CommentNode  `json:"comments"`
	Collaborators      []Collaborator `json:"collaborators"`
	Mentors            []Collaborator `json:"mentors"`
}

type LikeToggle struct {
	Liked bool `json:"liked"`
}

type LikeCheck struct {
	HasLiked bool `json:"hasLiked"`
}

type LikedComments struct {
	LikedCommentIDs []string `json:"likedCommentIds"`
}

// Collaborator covers both collaborator and mentor join rows.
type Collaborator struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	IdeaID   string      `json:"ideaId"`
	JoinedAt time.Time   `json:"joinedAt"`
	User     UserSummary `json:"user"`
}

type JoinAck struct {
	Message      string        `json:"message"`
	Collaborator *Collaborator `json:"collaborator,omitempty"`
	Mentor       *Collaborator `json:"mentor,omitempty"`
}

type Meeting struct {
	ID            string     `json:"id"`
	IdeaID        string     `json:"ideaId"`
	Title         *string    `json:"title"`
	JitsiRoomName string     `json:"jitsiRoomName"`
	Status        string     `json:"status"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	StartedAt     *time.Time `json:"startedAt"`
	EndedAt       *time.Time `json:"endedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	CreatedBy     string     `json:"createdBy"`
}

type MeetingToken struct {
	Token string `json:"token"`
}

type RoleCount struct {
	Role  string `json:"role" db:"role"`
	Total int64  `json:"total" db:"total"`
}

type SubmissionCounts struct {
	Total    int64 `json:"total" db:"total"`
	Pending  int64 `json:"pending" db:"pending"`
	Approved int64 `json:"approved" db:"approved"`
	Rejected int64 `json:"rejected" db:"rejected"`
}

type PlatformTotals struct {
	Users          int64 `json:"users" db:"users"`
	PublishedIdeas int64 `json:"publishedIdeas" db:"published_ideas"`
	Comments       int64 `json:"comments" db:"comments"`
	Likes          int64 `json:"likes" db:"likes"`
	Meetings       int64 `json:"meetings" db:"meetings"`
}

type Analytics struct {
	Totals      PlatformTotals   `json:"totals"`
	UsersByRole []RoleCount      `json:"usersByRole"`
	Submissions SubmissionCounts `json:"submissions"`
}

type HealthStatus struct {
	Healthy  bool   `json:"healthy"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}
