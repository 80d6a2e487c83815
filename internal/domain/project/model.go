package project

import (
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"gorm.io/datatypes"
)

const (
	StatusActive    = "active"
	StatusArchived  = "archived"
	StatusCompleted = "completed"
)

// Project is a unit of work owned by the admin who created it.
type Project struct {
	ID            uint            `gorm:"primaryKey"`
	Title         string          `gorm:"size:100;not null"`
	Description   string          `gorm:"size:500"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	StartDate     datatypes.Date  `gorm:"not null"`
	EndDate       datatypes.Date  `gorm:"not null"`
	Status        string          `gorm:"size:20;not null;default:'active'"`
	OwnerID       uint            `gorm:"not null;index"`
	AssignedUsers []user.User     `gorm:"many2many:project_assignments;constraint:OnDelete:CASCADE"`
	Tickets       []ticket.Ticket `gorm:"foreignKey:ProjectID"`
}

// Assignment is a row of the project membership join table.
type Assignment struct {
	UserID    uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"primaryKey"`
}

func (Assignment) TableName() string {
	return "project_assignments"
}
