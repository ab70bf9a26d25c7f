package models

// DocumentType distinguishes images (which may get thumbnails) from other files.
type DocumentType string

const (
	DocumentTypeImage DocumentType = "image"
	DocumentTypeDoc   DocumentType = "doc"
)

// Document is metadata for an uploaded file. At most one owner key is set.
type Document struct {
	Base
	Name      string       `gorm:"not null" json:"name"`
	URL       string       `gorm:"not null" json:"url"`
	Type      DocumentType `gorm:"not null" json:"type"`
	Thumbnail *string      `json:"thumbnail"`

	ExpenseID            *string `gorm:"type:uuid;index" json:"expenseId,omitempty"`
	MaintenanceExpenseID *string `gorm:"type:uuid;index" json:"maintenanceExpenseId,omitempty"`
	InvestmentID         *string `gorm:"type:uuid;index" json:"investmentId,omitempty"`
	PropertyID           *string `gorm:"type:uuid;index" json:"propertyId,omitempty"`
	AgentID              *string `gorm:"type:uuid;index" json:"agentId,omitempty"`
}
