package user

type RegisterInput struct {
	Username string  `json:"username" form:"username" binding:"required,max=50" example:"johndoe"`
	Email    string  `json:"email" form:"email" binding:"required,email,max=120" example:"john@example.com"`
	Password string  `json:"password" form:"password" binding:"required" example:"password123"`
	Avatar   *string `json:"avatar,omitempty" form:"avatar" example:"https://cdn.example.com/a.png"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required" example:"john@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// UpdateProfileInput is a sparse patch; nil fields are left unchanged.
type UpdateProfileInput struct {
	Username *string `json:"username,omitempty" binding:"omitempty,max=50" example:"johndoe"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email,max=120" example:"john@example.com"`
	Password *string `json:"password,omitempty" example:"newPass123"`
}

// AdminUpdateInput extends the profile patch with a role change.
type AdminUpdateInput struct {
	UpdateProfileInput
	Role *string `json:"role,omitempty" example:"admin"`
}

type UserDTO struct {
	ID       uint    `json:"id" example:"1"`
	Username string  `json:"username" example:"johndoe"`
	Email    string  `json:"email" example:"john@example.com"`
	Role     Role    `json:"role" example:"user"`
	Avatar   *string `json:"avatar" example:"https://cdn.example.com/a.png"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
}

func ToDTOs(users []User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToDTO(u))
	}
	return out
}
