package domain

import "time"

// User is the persisted identity record. It carries the password hash and
// must not leave the user directory; callers get a PublicUser instead.
type User struct {
	ID                string
	Email             string
	Name              string
	PasswordHash      string
	Role              Role
	Avatar            *string
	TwoFactorEnabled  bool
	TutorialCompleted bool
	TokensValidAfter  time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PublicUser is the client-safe projection of a User.
type PublicUser struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              Role      `json:"role"`
	Avatar            *string   `json:"avatar,omitempty"`
	TwoFactorEnabled  bool      `json:"twoFactorEnabled"`
	TutorialCompleted bool      `json:"tutorialCompleted"`
	TokensValidAfter  time.Time `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Public strips the password hash.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Role:              u.Role,
		Avatar:            u.Avatar,
		TwoFactorEnabled:  u.TwoFactorEnabled,
		TutorialCompleted: u.TutorialCompleted,
		TokensValidAfter:  u.TokensValidAfter,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// HasPermission is a shorthand for HasPermission(u.Role, perm).
func (u *PublicUser) HasPermission(perm Permission) bool {
	return u != nil && HasPermission(u.Role, perm)
}
