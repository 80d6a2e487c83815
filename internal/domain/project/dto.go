package project

import (
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/types"
)

type CreateProjectDTO struct {
	Title       string  `json:"title" binding:"required,max=100" example:"Q1 Launch"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
	StartDate   string  `json:"start_date" binding:"required" example:"2025-01-01"`
	EndDate     string  `json:"end_date" binding:"required" example:"2025-03-31"`
	Status      *string `json:"status,omitempty" example:"active"`
}

// UpdateProjectDTO is a sparse patch; nil fields are left unchanged.
type UpdateProjectDTO struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
	StartDate   *string `json:"start_date,omitempty" example:"2025-01-01"`
	EndDate     *string `json:"end_date,omitempty" example:"2025-03-31"`
	Status      *string `json:"status,omitempty" example:"archived"`
}

type AssignUserDTO struct {
	UserID uint `json:"user_id" binding:"required" example:"2"`
}

type ProjectDTO struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	CreatedAt     string             `json:"created_at" example:"2025-01-01 09:30:00"`
	StartDate     string             `json:"start_date" example:"2025-01-01"`
	EndDate       string             `json:"end_date" example:"2025-03-31"`
	Status        string             `json:"status"`
	OwnerID       uint               `json:"owner_id"`
	AssignedUsers []user.Summary     `json:"assigned_users"`
	Tickets       []ticket.TicketDTO `json:"tickets"`
}

func ToDTO(p Project) ProjectDTO {
	users := make([]user.Summary, 0, len(p.AssignedUsers))
	for _, u := range p.AssignedUsers {
		users = append(users, u.Summary())
	}
	return ProjectDTO{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt.Format(types.TimestampLayout),
		StartDate:     time.Time(p.StartDate).Format(config.DateLayout),
		EndDate:       time.Time(p.EndDate).Format(config.DateLayout),
		Status:        p.Status,
		OwnerID:       p.OwnerID,
		AssignedUsers: users,
		Tickets:       ticket.ToDTOs(p.Tickets),
	}
}

func ToDTOs(projects []Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToDTO(p))
	}
	return out
}
