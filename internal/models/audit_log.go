package models

// AuditLog records mutating operations for traceability. InvestorID is set
// when the action touches an investor's money or holdings.
type AuditLog struct {
	Base
	UserID       string  `gorm:"type:uuid;not null;index" json:"userId"`
	Action       string  `gorm:"not null" json:"action"`
	ResourceType string  `gorm:"not null" json:"resourceType"`
	ResourceID   string  `gorm:"type:uuid" json:"resourceId"`
	InvestorID   *string `gorm:"type:uuid;index" json:"investorId,omitempty"`
	IPAddress    string  `json:"ipAddress"`
	Changes      string  `json:"changes,omitempty"`
}
