// Package entities contains core business entities.
package entities

// User is a domain representation of a platform member.
type User struct {
	ID            int64
	Name          string
	Skills        []string
	Keywords      []string
	MainRole      string
	SubRole       string
	Rating        float64
	Participation int
	IsLeader      bool
	HasReward     bool
}

// Profile carries the user-editable part of a User.
type Profile struct {
	Name     string
	Skills   []string
	Keywords []string
	MainRole string
	SubRole  string
}

// ApplicantFilter holds resolved candidate-search predicates. Nil/empty
// fields mean the predicate is not applied.
type ApplicantFilter struct {
	Role      string
	Skill     string
	MinRating *float64
}

// ApplicantQuery is the raw query input before parsing. MinRating stays a
// string: a non-numeric value drops the rating predicate instead of failing.
type ApplicantQuery struct {
	Role      string
	Skill     string
	MinRating string
}
