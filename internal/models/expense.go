package models

// MaintenanceExpense is the mandatory yearly charge of a property. Its amount
// is fixed when the property is created and it follows the property's owner.
type MaintenanceExpense struct {
	Base
	PropertyID string  `gorm:"type:uuid;not null;uniqueIndex" json:"propertyId"`
	InvestorID *string `gorm:"type:uuid;index" json:"investorId"`
	Amount     float64 `gorm:"not null" json:"amount"`
	Paid       float64 `gorm:"not null;default:0" json:"paid"`

	Documents []Document `gorm:"foreignKey:MaintenanceExpenseID" json:"documents,omitempty"`
}

// Remaining is the amount still owed.
func (m *MaintenanceExpense) Remaining() float64 { return m.Amount - m.Paid }

// Expense is an ad-hoc charge billed to an investor.
type Expense struct {
	Base
	Name          string  `gorm:"not null" json:"name"`
	Amount        float64 `gorm:"not null" json:"amount"`
	Paid          float64 `gorm:"not null;default:0" json:"paid"`
	ForInvestorID string  `gorm:"type:uuid;not null;index" json:"forInvestorId"`

	ForInvestor *Investor  `gorm:"foreignKey:ForInvestorID" json:"forInvestor,omitempty"`
	Documents   []Document `gorm:"foreignKey:ExpenseID" json:"documents,omitempty"`
}

// Remaining is the amount still owed.
func (e *Expense) Remaining() float64 { return e.Amount - e.Paid }
