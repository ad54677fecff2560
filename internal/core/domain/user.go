package domain

type UserRole string

const (
	RoleCoach    UserRole = "COACH"
	RoleSkater   UserRole = "SKATER"
	RoleGuardian UserRole = "GUARDIAN"
	RoleObserver UserRole = "OBSERVER"
)

// User is the account returned by /auth/profile/ and /auth/login/.
type User struct {
	ID          int64    `json:"id,omitempty" yaml:"id,omitempty"`
	Email       string   `json:"email" yaml:"email"`
	FullName    string   `json:"full_name" yaml:"full_name"`
	Role        UserRole `json:"role" yaml:"role"`
	PhoneNumber string   `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	SkaterID    *int64   `json:"skater_id" yaml:"skater_id"`
	IsSuperuser bool     `json:"is_superuser" yaml:"is_superuser"`
}

// IsSkater reports whether u is the skater behind entity id.
func (u *User) IsSkater(id int64) bool {
	return u.Role == RoleSkater && u.SkaterID != nil && *u.SkaterID == id
}

// Session is an authenticated token together with the user it belongs to.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RegisterRequest is the body of POST /auth/register/.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
}

// ProfileUpdate is the body of PATCH /auth/profile/. Nil fields are left alone.
type ProfileUpdate struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=255"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
}

// AcceptInviteRequest completes an invitation, creating an account if needed.
type AcceptInviteRequest struct {
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
}
