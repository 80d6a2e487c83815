package ticket

import (
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
)

const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// ChangeType names the ticket field a history entry records.
type ChangeType string

const (
	ChangeStatus   ChangeType = "Status Change"
	ChangePriority ChangeType = "Priority Change"
)

type Ticket struct {
	ID             uint       `gorm:"primaryKey"`
	Title          string     `gorm:"size:255;not null"`
	Description    string     `gorm:"type:text"`
	Status         string     `gorm:"size:50;not null;default:'To Do'"`
	Priority       string     `gorm:"size:50;not null;default:'Medium'"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
	ProjectID      uint       `gorm:"not null;index"`
	AssignedUserID *uint      `gorm:"index"`
	CreatedByID    uint       `gorm:"not null;index"`
	AssignedUser   *user.User `gorm:"foreignKey:AssignedUserID"`
	Creator        *user.User `gorm:"foreignKey:CreatedByID"`
}

// History is an append-only record of one status or priority change.
type History struct {
	ID          uint       `gorm:"primaryKey"`
	TicketID    uint       `gorm:"not null;index"`
	ChangedByID uint       `gorm:"not null;index"`
	ChangeType  ChangeType `gorm:"size:255;not null"`
	OldValue    string     `gorm:"size:255"`
	NewValue    string     `gorm:"size:255"`
	ChangedAt   time.Time  `gorm:"not null;index"`
	ChangedBy   *user.User `gorm:"foreignKey:ChangedByID"`
}

func (History) TableName() string {
	return "ticket_history"
}
