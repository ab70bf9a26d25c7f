package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"estatedesk/internal/logger"
	"estatedesk/internal/models"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged and never propagate.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		InvestorID:   auditedInvestor(resourceType, resourceID, changes),
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// auditedInvestor picks the investor an event concerns: the resource itself
// for investor actions, otherwise the "investor_id" entry of changes.
func auditedInvestor(resourceType, resourceID string, changes map[string]any) *string {
	if resourceType == "investor" && resourceID != "" {
		return &resourceID
	}
	switch id := changes["investor_id"].(type) {
	case string:
		if id != "" {
			return &id
		}
	case *string:
		if id != nil && *id != "" {
			v := *id
			return &v
		}
	}
	return nil
}
