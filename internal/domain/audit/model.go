package audit

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// AuditLog records an administrative or membership-changing action.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Action       string         `gorm:"size:20;not null;index" json:"action"`
	ResourceType string         `gorm:"size:30;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:64;not null" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `json:"new_data,omitempty" swaggertype:"object"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

const (
	ResourceProject = "project"
	ResourceUser    = "user"
)

// ProjectResourceID is the resource_id stored for project entries.
func ProjectResourceID(id uint) string {
	return fmt.Sprintf("project_id=%d", id)
}

// UserResourceID is the resource_id stored for user entries.
func UserResourceID(id uint) string {
	return fmt.Sprintf("user_id=%d", id)
}
