package models

// Property is an existing real-world unit. Properties are never deleted.
type Property struct {
	Base
	Name       string  `gorm:"not null" json:"name"`
	Floor      int     `gorm:"not null" json:"floor"`
	Area       float64 `gorm:"not null" json:"area"`
	Direction  string  `gorm:"not null" json:"direction"`
	Elevators  int     `gorm:"not null;default:0" json:"elevators"`
	InvestorID *string `gorm:"type:uuid;index" json:"investorId"`

	Investor           *Investor           `gorm:"foreignKey:InvestorID" json:"investor,omitempty"`
	MaintenanceExpense *MaintenanceExpense `gorm:"foreignKey:PropertyID" json:"maintenanceExpense,omitempty"`
	Documents          []Document          `gorm:"foreignKey:PropertyID" json:"documents,omitempty"`
}
