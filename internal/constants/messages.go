package constants

const (
	MsgAuthRequired        = "Authentication required"
	MsgInvalidToken        = "Invalid or expired token"
	MsgAdminRequired       = "Admin access required"
	MsgMentorRoleRequired  = "Only users with MENTOR role can become mentors"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgEmailInUse          = "Email already in use"
	MsgAlreadyReviewed     = "Idea has already been reviewed"
	MsgSubmissionNotFound  = "Submission not found"
	MsgIdeaNotFound        = "Idea not found or not approved"
	MsgCommentNotFound     = "Comment not found"
	MsgMeetingNotFound     = "Meeting not found"
	MsgAlreadyCollaborator = "You are already a collaborator for this idea"
	MsgAlreadyMentor       = "You are already a mentor for this idea"
	MsgOwnIdeaJoin         = "You cannot join your own idea"
	MsgNotCollaborator     = "You are not a collaborator for this idea"
	MsgNotMentor           = "You are not a mentor for this idea"
)

type CachePrefix string

const (
	CachePrefixApprovedIdeas CachePrefix = "IDEAS_APPROVED"
)
