// Package dto defines the HTTP request and response shapes.
package dto

// ErrorCode is a machine-checkable error discriminator.
type ErrorCode string

const (
	// CodeNotFound maps missing or foreign-scoped resources.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeForbidden maps leadership-authority violations.
	CodeForbidden ErrorCode = "FORBIDDEN"
	// CodeInvalidArgument maps failed input validation.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeUnauthorized maps missing or invalid credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// CodeInternal maps unexpected failures.
	CodeInternal ErrorCode = "INTERNAL"
)

// APIError is the error payload body.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse wraps an APIError.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// User is the user view returned by listings and the candidate filter.
type User struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Skills        []string `json:"skills"`
	MainRole      string   `json:"main_role"`
	Keywords      []string `json:"keywords"`
	Rating        float64  `json:"rating"`
	Participation int      `json:"participation"`
}

// Team is the team view for listings.
type Team struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Leader     User     `json:"leader"`
	Tech       []string `json:"tech"`
	LookingFor []string `json:"looking_for"`
	MaxMembers int      `json:"max_members"`
	Status     string   `json:"status"`
	Members    []User   `json:"members"`
}

// Membership is a nested application or invitation with its counterpart user.
type Membership struct {
	ID     int64  `json:"id"`
	User   User   `json:"user"`
	Status string `json:"status"`
}

// TeamDetail extends Team with application and invitation history.
type TeamDetail struct {
	Team
	Applications []Membership `json:"applications"`
	Invitations  []Membership `json:"invitations"`
}

// MembershipRef is the compact shape for "my" listings.
type MembershipRef struct {
	ID     int64  `json:"id"`
	Team   int64  `json:"team"`
	Status string `json:"status"`
}

// CreateTeamRequest is the team creation body.
type CreateTeamRequest struct {
	Name       string   `json:"name"`
	Tech       []string `json:"tech"`
	LookingFor []string `json:"looking_for"`
	MaxMembers int      `json:"max_members"`
}

// CreateTeamResponse returns the new team id.
type CreateTeamResponse struct {
	ID int64 `json:"id"`
}

// InviteRequest names the user to invite.
type InviteRequest struct {
	UserID int64 `json:"user_id"`
}

// ProfileRequest is the profile update body.
type ProfileRequest struct {
	Name     string   `json:"name"`
	Skills   []string `json:"skills"`
	Keywords []string `json:"keywords"`
	MainRole string   `json:"main_role"`
	SubRole  string   `json:"sub_role"`
}

// StatusResponse acknowledges a lifecycle action.
type StatusResponse struct {
	Status string `json:"status"`
}
