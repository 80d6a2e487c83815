package utils

import (
	"encoding/json"
	"log"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/audit"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"gorm.io/datatypes"
)

// LogAudit writes an audit row through repos, normally inside the caller's
// transaction so the entry commits or rolls back with the change it describes.
var LogAudit = func(
	repos repository.AuditRepo,
	userID uint,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
) error {
	auditLog := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      marshalAuditData(before),
		NewData:      marshalAuditData(after),
		Description:  description,
	}
	return repos.CreateAuditLog(auditLog)
}

func marshalAuditData(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Audit marshal error: %v", err)
		return nil
	}
	return datatypes.JSON(data)
}
