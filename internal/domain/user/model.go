package user

import "time"

// Role is the coarse-grained capability tag carried by every user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:200;not null" json:"-"`
	Role      Role      `gorm:"size:20;not null;default:'user'" json:"role"`
	Avatar    *string   `gorm:"size:300" json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Summary is the compact form embedded in project listings.
type Summary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}
