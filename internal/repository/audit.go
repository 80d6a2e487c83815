package repository

import (
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditQueryParams holds optional equality filters. Limit <= 0 returns every match.
type AuditQueryParams struct {
	UserID       *uint
	ResourceType *string
	ResourceID   *string
	Action       *string
	Limit        int
}

// ForProject narrows the query to entries about one project.
func (p AuditQueryParams) ForProject(projectID uint) AuditQueryParams {
	resourceType, resourceID := audit.ResourceProject, audit.ProjectResourceID(projectID)
	p.ResourceType, p.ResourceID = &resourceType, &resourceID
	return p
}

// ForTargetUser narrows the query to entries about one user account.
func (p AuditQueryParams) ForTargetUser(userID uint) AuditQueryParams {
	resourceType, resourceID := audit.ResourceUser, audit.UserResourceID(userID)
	p.ResourceType, p.ResourceID = &resourceType, &resourceID
	return p
}

func (p AuditQueryParams) scope(db *gorm.DB) *gorm.DB {
	filters := map[string]*string{
		"resource_type": p.ResourceType,
		"resource_id":   p.ResourceID,
		"action":        p.Action,
	}
	if p.UserID != nil {
		db = db.Where("user_id = ?", *p.UserID)
	}
	for column, value := range filters {
		if value != nil {
			db = db.Where(column+" = ?", *value)
		}
	}
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	return db
}

type AuditRepo interface {
	GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, error)
	CreateAuditLog(entry *audit.AuditLog) error
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

// GetAuditLogs returns matching entries, newest first.
func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	err := r.db.Model(&audit.AuditLog{}).
		Scopes(params.scope).
		Order("created_at DESC").
		Order("id DESC").
		Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
