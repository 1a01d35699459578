package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrForbidden          = errors.New("access forbidden")
)

// User is a marketplace member. IsAdmin grants moderation rights.
type User struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Avatar      string  `json:"avatar"`
	Bio         string  `json:"bio"`
	Location    string  `json:"location"`
	JoinedAt    string  `json:"joinedAt"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	IsAdmin     bool    `json:"isAdmin"`
}

// Roles derived from a signed-in user.
const (
	RoleMember    = "member"
	RoleModerator = "moderator"
)

// Role returns RoleModerator for admins and RoleMember otherwise.
func (u User) Role() string {
	if u.IsAdmin {
		return RoleModerator
	}
	return RoleMember
}

// ProfileUpdate carries the user fields a member may change. Nil fields are left untouched.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Avatar   *string
	Bio      *string
	Location *string
}

// Apply returns a copy of u with the non-nil fields of p merged in.
func (p ProfileUpdate) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	return u
}
