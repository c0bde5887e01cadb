package model

import "time"

// Role controls visibility and mutation rights across the API.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User represents a registered account. Profile fields are optional and
// filled in after registration.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         *string   `json:"name,omitempty" gorm:"size:200"`
	Surname      *string   `json:"surname,omitempty" gorm:"size:200"`
	Nickname     *string   `json:"nickname,omitempty" gorm:"size:200"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:200;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Age          *int      `json:"age,omitempty"`
	Role         Role      `json:"role" gorm:"size:20;not null;default:'USER'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Tracks []Track `json:"-" gorm:"foreignKey:UserID"`
}

// AdminUserView is the full profile projection returned to ADMIN callers.
type AdminUserView struct {
	ID       uint    `json:"id"`
	Name     *string `json:"name,omitempty"`
	Surname  *string `json:"surname,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Email    string  `json:"email"`
	Role     Role    `json:"role"`
}

// PeerUserView is the privacy-reduced projection returned to non-admin
// callers. Same data set, fewer fields, never an error.
type PeerUserView struct {
	ID       uint    `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
}

// ProjectUser shapes a user record according to the caller's role.
func ProjectUser(u User, callerRole Role) interface{} {
	if callerRole == RoleAdmin {
		return AdminUserView{
			ID:       u.ID,
			Name:     u.Name,
			Surname:  u.Surname,
			Nickname: u.Nickname,
			Age:      u.Age,
			Email:    u.Email,
			Role:     u.Role,
		}
	}
	return PeerUserView{
		ID:       u.ID,
		Nickname: u.Nickname,
	}
}

// ProjectUsers applies ProjectUser to a page of users.
func ProjectUsers(users []User, callerRole Role) []interface{} {
	views := make([]interface{}, 0, len(users))
	for _, u := range users {
		views = append(views, ProjectUser(u, callerRole))
	}
	return views
}
